package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/echoshim/app"
	"github.com/lambda-feedback/echoshim/app/standalone"
	"github.com/lambda-feedback/echoshim/util/conf"
	"github.com/lambda-feedback/echoshim/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server that echoes the body
of every request back to the caller, with a text/plain
content type.

The command will launch the http server and blocks indefin-
itely, processing incoming http requests.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and echo requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "localhost",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
			&cli.DurationFlag{
				Name:     "read-header-timeout",
				Usage:    "The maximum duration for reading request headers.",
				Value:    10 * time.Second,
				Category: "http",
				EnvVars:  []string{"HTTP_READ_HEADER_TIMEOUT"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Defaults: conf.DefaultConfig{
			"host":                ctx.String("host"),
			"port":                ctx.Int("port"),
			"h2c":                 ctx.Bool("h2c"),
			"read_header_timeout": ctx.Duration("read-header-timeout"),
		},
		EnvPrefix: envPrefix,
		Log:       log,
		Cli:       ctx,
	})
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
