package client

import (
	"github.com/MKhiriev/go-coreapi/models"
	"github.com/urfave/cli/v2"
)

func (a *App) xdrsCommand() *cli.Command {
	return &cli.Command{
		Name:  "xdrs",
		Usage: "Query xDR reports with the cached token",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Usage:   "xDR attribute to return, repeatable; defaults to the standard projection",
			},
			&cli.StringSliceFlag{
				Name:  "filter",
				Usage: `filter as key=value, repeatable; JSON values are decoded, e.g. --filter 'date=["2024-01-01","2024-01-31"]'`,
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "maximum number of rows",
			},
		},
		Action: a.queryXDRs,
	}
}

func (a *App) queryXDRs(c *cli.Context) error {
	if err := a.cfg.ValidateCoreAPI(); err != nil {
		return err
	}

	filters, err := parseFilters(c.StringSlice("filter"))
	if err != nil {
		return err
	}

	xdrs, err := a.services.ReportsService.QueryXDRs(c.Context, models.XDRQuery{
		ReturnFields: c.StringSlice("field"),
		Filters:      filters,
		Limit:        c.Int("limit"),
	})
	if err != nil {
		return err
	}

	return a.render(xdrs)
}
