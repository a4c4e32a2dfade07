package client

import (
	"github.com/urfave/cli/v2"
)

type authorizeOutput struct {
	Login      string `json:"login" yaml:"login"`
	Authorized bool   `json:"authorized" yaml:"authorized"`
}

func (a *App) authorizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "authorize",
		Usage: "Check that a user authenticates against CoreAPI and holds the admin role",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "login",
				Aliases:  []string{"u"},
				Usage:    "user login",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "user password",
				EnvVars:  []string{"COREAPI_AUTHORIZE_PASSWORD"},
				Required: true,
			},
		},
		Action: a.authorize,
	}
}

// authorize renders the decision and exits with exitNotAuthorized when the
// user is rejected.
func (a *App) authorize(c *cli.Context) error {
	if err := a.cfg.ValidateAdmin(); err != nil {
		return err
	}

	login := c.String("login")
	ok, err := a.services.AdminAuthService.AuthorizeUser(c.Context, login, c.String("password"))
	if err != nil {
		return err
	}

	if err = a.render(authorizeOutput{Login: login, Authorized: ok}); err != nil {
		return err
	}
	if !ok {
		return cli.Exit("not authorized", exitNotAuthorized)
	}

	return nil
}
