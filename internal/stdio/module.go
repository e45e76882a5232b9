package stdio

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoshim/internal/echo"
	"github.com/lambda-feedback/echoshim/util/logging"
)

// Module runs the adapter once and shuts the application down afterwards,
// exiting with 1 if the adapter failed.
func Module(streams Streams) fx.Option {
	return fx.Module(
		"stdio",
		// rename logger for module
		logging.DecorateLogger("stdio"),
		// provide streams
		fx.Supply(streams),
		// provide echo handler
		echo.Module(),
		// provide adapter
		fx.Provide(NewAdapter),
		// run adapter
		fx.Invoke(runAdapter),
	)
}

// ErrInterrupted is returned on stop if the application was shut down
// before the adapter finished, e.g. by SIGINT or SIGTERM.
var ErrInterrupted = errors.New("interrupted before the request was echoed")

type runParams struct {
	fx.In

	Context    context.Context
	Adapter    *Adapter
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Log        *zap.Logger
}

func runAdapter(params runParams) {
	var done atomic.Bool

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := params.Adapter.Run(params.Context); err != nil {
					params.Log.Error("failed to echo request", zap.Error(err))
					exitCode = 1
				}

				done.Store(true)

				params.Shutdowner.Shutdown(fx.ExitCode(exitCode))
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			// only a shutdown issued by the adapter itself is a normal exit
			if !done.Load() {
				params.Log.Error("shut down before the request was echoed")
				return ErrInterrupted
			}

			return nil
		},
	})
}
