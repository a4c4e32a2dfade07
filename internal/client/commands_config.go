package client

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

const secretMask = "********"

type configEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func (a *App) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Read and edit the dotenv config store",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Print the value stored under KEY",
				ArgsUsage: "KEY",
				Action:    a.configGet,
			},
			{
				Name:      "set",
				Usage:     "Store VALUE under KEY",
				ArgsUsage: "KEY VALUE",
				Action:    a.configSet,
			},
			{
				Name:  "list",
				Usage: "Print every entry in file order",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "show-secrets",
						Usage: "print passwords and tokens instead of masking them",
					},
				},
				Action: a.configList,
			},
			{
				Name:   "path",
				Usage:  "Print the location of the config store",
				Action: a.configPath,
			},
		},
	}
}

func (a *App) configGet(c *cli.Context) error {
	key := strings.TrimSpace(c.Args().First())
	if key == "" {
		return fmt.Errorf("%w: KEY", ErrMissingArgument)
	}

	value, ok, err := a.store.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return cli.Exit(fmt.Sprintf("%s is not set in %s", key, a.store.Path()), 1)
	}

	return a.render(configEntry{Key: key, Value: value})
}

func (a *App) configSet(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("%w: KEY VALUE", ErrMissingArgument)
	}

	key := strings.TrimSpace(c.Args().Get(0))
	if key == "" || strings.ContainsAny(key, "= \t\n") {
		return fmt.Errorf("%w: key %q", ErrInvalidArgument, key)
	}

	if err := a.store.Set(key, c.Args().Get(1)); err != nil {
		return err
	}

	a.logger.Debug().Str("key", key).Str("path", a.store.Path()).Msg("config entry stored")
	return nil
}

func (a *App) configList(c *cli.Context) error {
	entries, err := a.store.Load()
	if err != nil {
		return err
	}

	showSecrets := c.Bool("show-secrets")
	out := make([]configEntry, 0, len(entries))
	for _, e := range entries {
		value := e.Value
		if !showSecrets && isSecretKey(e.Key) && value != "" {
			value = secretMask
		}
		out = append(out, configEntry{Key: e.Key, Value: value})
	}

	return a.render(out)
}

func (a *App) configPath(_ *cli.Context) error {
	return a.render(configEntry{Key: "ENV_FILE", Value: a.store.Path()})
}

func isSecretKey(key string) bool {
	upper := strings.ToUpper(key)
	return strings.Contains(upper, "PASSWORD") || strings.Contains(upper, "TOKEN")
}
