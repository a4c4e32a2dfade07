package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/service"
	"github.com/MKhiriev/go-coreapi/internal/utils"
	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"
)

type tokenOutput struct {
	Token     string     `json:"token" yaml:"token"`
	Subject   string     `json:"subject,omitempty" yaml:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Expired   bool       `json:"expired" yaml:"expired"`
	Malformed bool       `json:"malformed,omitempty" yaml:"malformed,omitempty"`
	Persisted bool       `json:"persisted" yaml:"persisted"`
}

func (a *App) tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage the cached CoreAPI token",
		Subcommands: []*cli.Command{
			{
				Name:   "ensure",
				Usage:  "Print a valid token, re-authenticating only if the cached one is expired or malformed",
				Flags:  []cli.Flag{copyFlag()},
				Action: a.tokenEnsure,
			},
			{
				Name:   "refresh",
				Usage:  "Re-authenticate and persist a new token",
				Flags:  []cli.Flag{copyFlag()},
				Action: a.tokenRefresh,
			},
			{
				Name:   "show",
				Usage:  "Decode the cached token without contacting CoreAPI",
				Flags:  []cli.Flag{copyFlag()},
				Action: a.tokenShow,
			},
			{
				Name:  "watch",
				Usage: "Keep the cached token fresh until interrupted",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "interval",
						Usage: "how often the token is checked",
						Value: service.DefaultTokenKeeperInterval,
					},
				},
				Action: a.tokenWatch,
			},
		},
	}
}

func copyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "copy",
		Usage: "also copy the token to the system clipboard",
	}
}

func (a *App) tokenEnsure(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	token, err := a.services.TokenService.EnsureValidToken(c.Context)
	return a.renderToken(c, token, err)
}

func (a *App) tokenRefresh(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	token, err := a.services.TokenService.Refresh(c.Context)
	return a.renderToken(c, token, err)
}

func (a *App) tokenShow(c *cli.Context) error {
	token := a.services.TokenService.Current()
	out := describeToken(token)
	out.Persisted = true
	if err := a.render(out); err != nil {
		return err
	}

	return copyToken(c, token)
}

func (a *App) tokenWatch(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	job := a.services.TokenKeeperJob
	job.Start(c.Context, c.Duration("interval"))
	defer job.Stop()

	a.logger.Info().Dur("interval", c.Duration("interval")).Msg("token keeper started")
	<-c.Context.Done()
	a.logger.Info().Msg("token keeper stopped")

	return nil
}

// renderToken prints token even when it could not be persisted, and still
// reports the persistence error.
func (a *App) renderToken(c *cli.Context, token string, err error) error {
	if err != nil && !errors.Is(err, service.ErrPersistToken) {
		return err
	}

	out := describeToken(token)
	out.Persisted = err == nil
	if renderErr := a.render(out); renderErr != nil {
		return renderErr
	}
	if copyErr := copyToken(c, token); copyErr != nil {
		return copyErr
	}

	return err
}

func copyToken(c *cli.Context, token string) error {
	if !c.Bool("copy") || token == "" {
		return nil
	}
	if err := clipboard.WriteAll(token); err != nil {
		return fmt.Errorf("copy token to clipboard: %w", err)
	}
	return nil
}

func describeToken(token string) tokenOutput {
	out := tokenOutput{Token: token}

	claims, err := utils.ReadClaimsUnverified(token)
	if err != nil {
		out.Malformed = true
		out.Expired = true
		return out
	}

	out.Subject = claims.Subject
	if exp, ok := claims.Expiry(); ok {
		out.ExpiresAt = &exp
	}
	out.Expired = claims.ExpiredAt(time.Now())

	return out
}
