package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/echoshim/config"
	"github.com/lambda-feedback/echoshim/internal/shell"
	"github.com/lambda-feedback/echoshim/util/conf"
	"github.com/lambda-feedback/echoshim/util/logging"
)

var (
	appName   = "echoshim"
	envPrefix = "ECHOSHIM__"
	appUsage  = `A shim that echoes request bodies back to the caller, over
stdio, http or AWS Lambda.`
	appDescription = `Without a command, echoshim reads the request body from
stdin and writes it, unmodified, to stdout. All diagnostic
output is written to stderr.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		Description:     appDescription,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a .json or .env file.",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create a bootstrap logger from the flags alone
			log, err := logging.New(logging.Options{
				Level:  ctx.String("log-level"),
				Format: ctx.String("log-format"),
				Name:   appName,
			})
			if err != nil {
				return err
			}

			// parse config using defaults, file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:       ctx,
				Defaults:  config.DefaultConfig,
				EnvPrefix: envPrefix,
				FileName:  ctx.Path("config"),
				Schema:    config.Schema,
				Log:       log,
			})
			if err != nil {
				return err
			}

			// the config file may change the logger settings
			log, err = logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Name:   appName,
			})
			if err != nil {
				return err
			}

			// inject logger and config into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		Action: echoAction,
		After: func(ctx *cli.Context) error {
			// stderr can't always be synced, ignore
			_ = logging.LoggerFromContextOrNop(ctx.Context).Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the root app with the process arguments and returns the
// exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// the app already logged why it exited with a non-zero code
	if !shell.IsExitError(err) {
		sentry.CaptureException(err)
		fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())
	}

	return shell.ExitCode(err)
}
