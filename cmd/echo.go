package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoshim/app"
	"github.com/lambda-feedback/echoshim/internal/stdio"
	"github.com/lambda-feedback/echoshim/util/logging"
)

func echoAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	// from here on, stdout only carries the response body
	out, err := stdio.Acquire(os.Stdout, os.Stderr)
	if err != nil {
		log.Error("failed to acquire stdout", zap.Error(err))
		return err
	}
	defer out.Close()

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, stdio.Module(stdio.Streams{
		In:  os.Stdin,
		Out: out,
	}))
}
