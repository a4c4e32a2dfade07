package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/internal/service"
	"github.com/MKhiriev/go-coreapi/internal/store"
	"github.com/MKhiriev/go-coreapi/models"
	"github.com/urfave/cli/v2"
)

// App is the coreapi command-line application.
//
// Configuration, the config store and the services are built in the Before
// hook from the global flags, so every command sees the same wiring.
type App struct {
	cli *cli.App

	stdout    io.Writer
	logger    *logger.Logger
	buildInfo models.AppBuildInfo

	cfg       *config.Config
	store     store.ConfigStore
	services  *service.Services
	formatter Formatter
}

// NewApp builds the application. Results are written to stdout; logs go
// through log.
func NewApp(buildInfo models.AppBuildInfo, stdout, stderr io.Writer, log *logger.Logger) *App {
	a := &App{stdout: stdout, logger: log, buildInfo: buildInfo}

	a.cli = &cli.App{
		Name:      "coreapi",
		Usage:     "CoreAPI JSON-RPC client: token management, clients, accounts and user authorization",
		Version:   buildInfo.String(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Before:    a.before,
		Commands: []*cli.Command{
			a.tokenCommand(),
			a.clientsCommand(),
			a.accountsCommand(),
			a.authorizeCommand(),
			a.xdrsCommand(),
			a.configCommand(),
			a.serveCommand(),
		},
		// Exit codes are handled by the caller of Run.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cli.RunContext(ctx, args)
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"e"},
			Usage:   "dotenv file holding the CoreAPI settings and the cached token",
			Value:   config.DefaultEnvFilePath,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "optional JSON configuration file",
		},
		&cli.StringFlag{
			Name:  "server",
			Usage: "CoreAPI server URL, overrides COREAPI_SERVER",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: json, yaml, table",
			Value:   string(FormatJSON),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
}

// overridesFromFlags collects the configuration set on the command line.
// The env file path only overrides when given explicitly so that ENV_FILE
// keeps working.
func overridesFromFlags(c *cli.Context) *config.Config {
	overrides := &config.Config{
		CoreAPI:      config.CoreAPI{Server: c.String("server")},
		JSONFilePath: c.String("config"),
	}
	if c.IsSet("env-file") {
		overrides.Store.EnvFilePath = c.String("env-file")
	}
	return overrides
}

func (a *App) before(c *cli.Context) error {
	a.logger.SetVerbose(c.Bool("verbose"))

	formatter, err := NewFormatter(c.String("output"))
	if err != nil {
		return err
	}

	cfg, err := config.GetConfig(overridesFromFlags(c))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	configStore, err := store.NewEnvFileStore(cfg.Store.EnvFilePath, a.logger)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	connector := adapter.NewHTTPConnector(cfg.Adapter, a.logger)

	a.cfg = cfg
	a.store = configStore
	a.services = service.NewServices(cfg, connector, configStore, a.logger)
	a.formatter = formatter

	a.logger.Debug().
		Str("env_file", cfg.Store.EnvFilePath).
		Str("server", cfg.CoreAPI.Server).
		Msg("configuration loaded")

	return nil
}

func (a *App) render(data any) error {
	return a.formatter.Format(a.stdout, data)
}
