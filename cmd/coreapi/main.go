package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-coreapi/internal/client"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/models"
	"github.com/urfave/cli/v2"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("coreapi-cli")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(buildInfo, os.Stdout, os.Stderr, log)
	err := app.Run(ctx, os.Args)
	if err == nil {
		return
	}

	stop()
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitErr.ExitCode())
	}

	log.Error().Err(err).Msg("command failed")
	os.Exit(1)
}
