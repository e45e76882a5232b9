package gateway

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoshim/internal/echo"
)

const (
	StatusOK        = "200 OK"
	TextContentType = "text/plain"
)

// AppParams defines the dependencies for the gateway app.
type AppParams struct {
	fx.In

	Handler *echo.Handler
	Log     *zap.Logger
}

// App adapts the echo handler to the gateway calling convention.
type App struct {
	handler *echo.Handler
	log     *zap.Logger
}

// NewApp creates a new gateway app.
func NewApp(params AppParams) *App {
	return &App{
		handler: params.Handler,
		log:     params.Log,
	}
}

// Call handles a single request. respond is called exactly once before
// the body is returned, and never if an error is returned.
func (a *App) Call(environ Environ, respond StartResponse) (echo.Body, error) {
	input, err := environ.Input()
	if err != nil {
		return nil, err
	}

	body, err := a.handler.Serve(input)
	if err != nil {
		return nil, err
	}

	a.log.Debug("start response",
		zap.String("status", StatusOK),
		zap.String("request_id", environ.String(RequestIDKey)),
	)

	respond(StatusOK, []Header{{Name: "Content-Type", Value: TextContentType}})

	return body, nil
}
