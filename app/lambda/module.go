package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/echoshim/internal/gateway"
	"github.com/lambda-feedback/echoshim/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide gateway app and route
		gateway.Module(),
		// provide handler
		fx.Provide(NewLifecycleHandler),
		// invoke handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
