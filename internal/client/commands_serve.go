// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	gateway "github.com/MKhiriev/go-coreapi/internal/handler/http"
	"github.com/MKhiriev/go-coreapi/internal/server"
	"github.com/MKhiriev/go-coreapi/internal/service"
	"github.com/urfave/cli/v2"
)

const defaultListenAddress = ":8080"

func (a *App) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP authorization gateway (POST /api/authorize)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "listen address, overrides SERVER_HTTP_ADDRESS (default " + defaultListenAddress + ")",
			},
			&cli.BoolFlag{
				Name:  "keep-token",
				Usage: "also keep the service account token fresh while serving",
			},
			&cli.DurationFlag{
				Name:  "token-interval",
				Usage: "how often the token is checked with --keep-token",
				Value: service.DefaultTokenKeeperInterval,
			},
		},
		Action: a.serve,
	}
}

func (a *App) serve(c *cli.Context) error {
	if err := a.cfg.ValidateAdmin(); err != nil {
		return err
	}

	serverCfg := a.cfg.Server
	if c.IsSet("listen") {
		serverCfg.HTTPAddress = c.String("listen")
	}
	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = defaultListenAddress
	}

	if c.Bool("keep-token") {
		if err := a.cfg.ValidateCoreAPI(); err != nil {
			return err
		}
		a.services.TokenKeeperJob.Start(c.Context, c.Duration("token-interval"))
		defer a.services.TokenKeeperJob.Stop()
	}

	handler := gateway.NewHandler(a.services, a.buildInfo, a.logger)
	srv, err := server.NewServer(handler.Init(), serverCfg, a.logger)
	if err != nil {
		return err
	}

	return srv.Run(c.Context)
}
