package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	appName = "task-keeper"

	flagServer    = "server"
	flagTimeout   = "timeout"
	flagTokenFile = "token-file"
	flagVerbose   = "verbose"

	envServer = "TASK_KEEPER_SERVER"

	defaultServerAddress  = "http://localhost:3000"
	defaultRequestTimeout = 10 * time.Second
)

// AdapterFactory builds the server adapter from the resolved client flags.
type AdapterFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.ServerAdapter, error)

// App is the command-line client. Every invocation builds a fresh adapter
// from the global flags and restores the session token from the token file.
type App struct {
	newAdapter AdapterFactory
	buildInfo  models.AppBuildInfo

	out    io.Writer
	errOut io.Writer
}

func NewApp(newAdapter AdapterFactory, buildInfo models.AppBuildInfo, out, errOut io.Writer) *App {
	if newAdapter == nil {
		newAdapter = adapter.NewHTTPServerAdapter
	}
	return &App{
		newAdapter: newAdapter,
		buildInfo:  buildInfo,
		out:        out,
		errOut:     errOut,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	return a.Command().Run(ctx, args)
}

// Command builds the root command with all subcommands attached.
func (a *App) Command() *cli.Command {
	return &cli.Command{
		Name:      appName,
		Usage:     "manage your task list on a task keeper server",
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagServer,
				Aliases: []string{"s"},
				Usage:   "server base URL",
				Value:   defaultServerAddress,
				Sources: cli.EnvVars(envServer),
			},
			&cli.DurationFlag{
				Name:  flagTimeout,
				Usage: "request timeout",
				Value: defaultRequestTimeout,
			},
			&cli.StringFlag{
				Name:  flagTokenFile,
				Usage: "file that keeps the session token",
				Value: DefaultTokenPath(),
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			a.registerCommand(),
			a.loginCommand(),
			a.logoutCommand(),
			a.whoamiCommand(),
			a.listCommand(),
			a.addCommand(),
			a.updateCommand(),
			a.deleteCommand(),
			a.versionCommand(),
		},
	}
}

// session is the per-invocation state shared by command actions.
type session struct {
	adapter adapter.ServerAdapter
	tokens  *TokenFile
	logger  *logger.Logger
}

// connect resolves the global flags into an adapter. With authenticated set,
// the stored token is loaded into the adapter or ErrNotLoggedIn is returned.
func (a *App) connect(cmd *cli.Command, authenticated bool) (*session, error) {
	log := logger.NewClientLogger(appName, a.errOut, cmd.Bool(flagVerbose))

	serverAdapter, err := a.newAdapter(config.ClientAdapter{
		HTTPAddress:    cmd.String(flagServer),
		RequestTimeout: cmd.Duration(flagTimeout),
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	s := &session{
		adapter: serverAdapter,
		tokens:  NewTokenFile(cmd.String(flagTokenFile)),
		logger:  log,
	}

	if authenticated {
		token, err := s.tokens.Load()
		if err != nil {
			return nil, err
		}
		s.adapter.SetToken(token)
	}

	return s, nil
}
