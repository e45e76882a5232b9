package cmd

import (
	"errors"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoshim/internal/probe"
	"github.com/lambda-feedback/echoshim/internal/shell"
	"github.com/lambda-feedback/echoshim/util/logging"
)

var (
	probeCmdDescription = `The probe command checks whether the given executables are
available on the PATH, and reports the reason for every
executable that is not. It exits with 1 if any is missing.`
	probeCmd = &cli.Command{
		Name:        "probe",
		Usage:       "Check for optional executables.",
		ArgsUsage:   "NAME...",
		Description: probeCmdDescription,
		Action:      probeAction,
	}
)

func probeAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing executable name")
	}

	missing := 0
	for _, result := range probe.CheckAll(ctx.Args().Slice()...) {
		if !result.Available {
			missing++
			log.Warn("not available",
				zap.String("name", result.Name),
				zap.String("reason", result.Reason),
			)
			continue
		}

		log.Info("available",
			zap.String("name", result.Name),
			zap.String("path", result.Path),
		)
	}

	if missing > 0 {
		return shell.NewExitError(1)
	}

	return nil
}

func init() {
	rootApp.Commands = append(rootApp.Commands, probeCmd)
}
