package gateway

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// HttpHandlerParams defines the dependencies for the http handler.
type HttpHandlerParams struct {
	fx.In

	App *App
	Log *zap.Logger
}

// HttpHandler serves http requests through the gateway app.
type HttpHandler struct {
	app *App
	log *zap.Logger
}

// NewHttpHandler creates a new http handler.
func NewHttpHandler(params HttpHandlerParams) *HttpHandler {
	return &HttpHandler{
		app: params.App,
		log: params.Log,
	}
}

func (h *HttpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	environ := NewEnviron(r)

	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("request_id", environ.String(RequestIDKey)),
	)

	var (
		status  = http.StatusOK
		started bool
	)

	respond := func(line string, headers []Header) {
		code, err := ParseStatus(line)
		if err != nil {
			log.Error("invalid status line", zap.String("status", line), zap.Error(err))
			code = http.StatusInternalServerError
		}

		for _, header := range headers {
			w.Header().Add(header.Name, header.Value)
		}

		status = code
		started = true
	}

	body, err := h.app.Call(environ, respond)
	if err != nil {
		log.Error("failed to handle request", zap.Error(err))
		http.Error(w, "failed to handle request", http.StatusInternalServerError)
		return
	}

	if !started {
		log.Error("response was not started")
		http.Error(w, "response was not started", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(status)

	for _, chunk := range body {
		if _, err := w.Write(chunk); err != nil {
			log.Debug("failed to write response", zap.Error(err))
			return
		}
	}
}

// NewEnviron creates the environ for an http request.
func NewEnviron(r *http.Request) Environ {
	environ := Environ{
		InputKey:         r.Body,
		RequestMethodKey: r.Method,
		PathInfoKey:      r.URL.Path,
		QueryStringKey:   r.URL.RawQuery,
		ContentTypeKey:   r.Header.Get("Content-Type"),
		RequestIDKey:     uuid.NewString(),
	}

	if r.ContentLength >= 0 {
		environ[ContentLengthKey] = strconv.FormatInt(r.ContentLength, 10)
	}

	return environ
}

// ParseStatus parses the status code from a status line like "200 OK".
func ParseStatus(line string) (int, error) {
	codeStr, _, _ := strings.Cut(strings.TrimSpace(line), " ")

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid status line %q: %w", line, err)
	}

	if code < 100 || code > 999 {
		return 0, fmt.Errorf("invalid status code %d", code)
	}

	return code, nil
}
