package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/echoshim/internal/gateway"
	"github.com/lambda-feedback/echoshim/internal/server"
	"github.com/lambda-feedback/echoshim/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide gateway app and route
		gateway.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
