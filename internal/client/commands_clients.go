package client

import (
	"github.com/urfave/cli/v2"
)

func (a *App) clientsCommand() *cli.Command {
	return &cli.Command{
		Name:  "clients",
		Usage: "Query CoreAPI clients",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Get one client by id",
				ArgsUsage: "ID",
				Action:    a.clientsGet,
			},
			{
				Name:  "search",
				Usage: "List clients",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "maximum number of clients; without it up to 10000 are returned",
					},
				},
				Action: a.clientsSearch,
			},
		},
	}
}

func (a *App) clientsGet(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	id, err := idArgument(c, "ID")
	if err != nil {
		return err
	}

	client, err := a.services.ClientsService.Get(c.Context, id)
	if err != nil {
		return err
	}

	return a.render(client)
}

func (a *App) clientsSearch(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	clients, err := a.services.ClientsService.Search(c.Context, c.IsSet("limit"), c.Int("limit"))
	if err != nil {
		return err
	}

	return a.render(clients)
}
