package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoshim/app"
	"github.com/lambda-feedback/echoshim/app/lambda"
	"github.com/lambda-feedback/echoshim/util/conf"
	"github.com/lambda-feedback/echoshim/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the shim as an AWS Lambda runtime
interface client, which allows it to be directly invoked by
the AWS Lambda runtime without any additional dependencies.

The command will start the AWS runtime interface client and
blocks indefinitely, echoing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Defaults: conf.DefaultConfig{
			"lambda_proxy_source": ctx.String("lambda-proxy-source"),
		},
		EnvPrefix: envPrefix,
		Log:       log,
		Cli:       ctx,
	})
	if err != nil {
		return err
	}

	if err := cfg.ProxySource.Validate(); err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler", zap.Stringer("proxy_source", cfg.ProxySource))

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
