package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Routes []*Route `group:"routes"`
	Logger *zap.Logger
}

type HttpServer struct {
	ctx     context.Context
	address string
	server  *http.Server
	log     *zap.Logger
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	server := &http.Server{
		Addr:              params.Config.Address(),
		Handler:           NewMux(params.Routes, params.Config.H2c),
		ReadHeaderTimeout: params.Config.ReadHeaderTimeout,
		ErrorLog:          zap.NewStdLog(params.Logger),
	}

	return &HttpServer{
		ctx:     params.Context,
		address: server.Addr,
		server:  server,
		log:     params.Logger,
	}
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle, sd fx.Shutdowner) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := server.Listen(ctx)
			if err != nil {
				return err
			}

			go func() {
				if err := server.Serve(listener); err != nil {
					sd.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}

// NewMux registers the routes on a new mux, optionally wrapped
// for HTTP/2 cleartext upgrades.
func NewMux(routes []*Route, enableH2c bool) http.Handler {
	mux := http.NewServeMux()

	for _, route := range routes {
		mux.Handle(route.Pattern, route.Handler)
	}

	if enableH2c {
		return h2c.NewHandler(mux, &http2.Server{})
	}

	return mux
}

func (s *HttpServer) Listen(ctx context.Context) (net.Listener, error) {
	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, "tcp", s.address)
	if err != nil {
		s.log.With(zap.Error(err)).Error("failed to listen")
		return nil, err
	}

	s.log.With(zap.String("address", listener.Addr().String())).Info("listening")

	return listener, nil
}

func (s *HttpServer) Serve(listener net.Listener) error {
	s.server.BaseContext = func(net.Listener) context.Context {
		return s.ctx
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.With(zap.Error(err)).Error("failed to serve")
		return err
	}

	return nil
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.With(zap.Error(err)).Error("failed to shutdown")
		return err
	}

	return nil
}
