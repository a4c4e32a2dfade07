package client

import (
	"github.com/urfave/cli/v2"
)

func (a *App) accountsCommand() *cli.Command {
	return &cli.Command{
		Name:  "accounts",
		Usage: "Query CoreAPI client accounts",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Get one account by id",
				ArgsUsage: "ID",
				Action:    a.accountsGet,
			},
			{
				Name:      "search",
				Usage:     "List the accounts of one client",
				ArgsUsage: "CLIENT_ID",
				Action:    a.accountsSearch,
			},
			{
				Name:  "list",
				Usage: "List accounts",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "maximum number of accounts; without it no limit is sent",
					},
				},
				Action: a.accountsList,
			},
		},
	}
}

func (a *App) accountsGet(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	id, err := idArgument(c, "ID")
	if err != nil {
		return err
	}

	accounts, err := a.services.AccountsService.Get(c.Context, id)
	if err != nil {
		return err
	}

	return a.render(accounts)
}

func (a *App) accountsSearch(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	clientID, err := idArgument(c, "CLIENT_ID")
	if err != nil {
		return err
	}

	accounts, err := a.services.AccountsService.SearchByClient(c.Context, clientID)
	if err != nil {
		return err
	}

	return a.render(accounts)
}

func (a *App) accountsList(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	accounts, err := a.services.AccountsService.SearchList(c.Context, c.IsSet("limit"), c.Int("limit"))
	if err != nil {
		return err
	}

	return a.render(accounts)
}
