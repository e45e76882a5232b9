package echo

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Body is the response body, as a sequence of chunks.
type Body [][]byte

// Len returns the total number of bytes across all chunks.
func (b Body) Len() int {
	n := 0
	for _, chunk := range b {
		n += len(chunk)
	}
	return n
}

// HandlerParams defines the dependencies for the echo handler.
type HandlerParams struct {
	fx.In

	Log *zap.Logger
}

// Handler reads a request body and returns it unmodified.
type Handler struct {
	log *zap.Logger
}

// NewHandler creates a new echo handler.
func NewHandler(params HandlerParams) *Handler {
	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &Handler{
		log: log.Named("echo"),
	}
}

// Serve reads r until EOF and returns its contents as a single chunk.
// Read errors are returned as is, no partial body is produced.
func (h *Handler) Serve(r io.Reader) (Body, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	h.log.Info("read request body", zap.Int("bytes", len(buf)))

	if ce := h.log.Check(zap.DebugLevel, "request body"); ce != nil {
		ce.Write(zap.String("dump", spew.Sdump(buf)))
	}

	return Body{buf}, nil
}
