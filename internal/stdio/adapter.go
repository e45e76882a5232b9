package stdio

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoshim/internal/echo"
)

// Streams holds the data channels of the adapter.
type Streams struct {
	// In is the request body source. It is passed to the handler as is.
	In io.Reader

	// Out receives the response body.
	Out io.Writer
}

// AdapterParams defines the dependencies for the stdio adapter.
type AdapterParams struct {
	fx.In

	Streams Streams
	Handler *echo.Handler
	Log     *zap.Logger
}

// Adapter echoes a request body read from In to Out.
type Adapter struct {
	streams Streams
	handler *echo.Handler
	log     *zap.Logger
}

func NewAdapter(params AdapterParams) *Adapter {
	return &Adapter{
		streams: params.Streams,
		handler: params.Handler,
		log:     params.Log,
	}
}

// Run handles a single request. It blocks until In is exhausted.
func (a *Adapter) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := a.handler.Serve(a.streams.In)
	if err != nil {
		return err
	}

	for i, chunk := range body {
		if _, err := a.streams.Out.Write(chunk); err != nil {
			return fmt.Errorf("write chunk %d: %w", i, err)
		}
	}

	a.log.Debug("wrote response body", zap.Int("bytes", body.Len()))

	return nil
}
