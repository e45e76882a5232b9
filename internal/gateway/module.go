package gateway

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/echoshim/internal/echo"
)

// Module provides the gateway app, its http handler and route.
func Module() fx.Option {
	return fx.Module(
		"gateway",
		echo.Module(),
		fx.Provide(NewApp),
		fx.Provide(NewHttpHandler),
		fx.Provide(NewRoute),
	)
}
