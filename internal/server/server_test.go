package server_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/echoshim/internal/server"
)

func helloHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "hello")
}

func TestHttpConfig_Address(t *testing.T) {
	cfg := server.HttpConfig{Host: "localhost", Port: 8080}
	assert.Equal(t, "localhost:8080", cfg.Address())

	cfg = server.HttpConfig{Host: "::1", Port: 9000}
	assert.Equal(t, "[::1]:9000", cfg.Address())
}

func TestNewMux(t *testing.T) {
	route := server.AsRoute("/", http.HandlerFunc(helloHandler))

	for _, enableH2c := range []bool{false, true} {
		t.Run(fmt.Sprintf("h2c=%v", enableH2c), func(t *testing.T) {
			mux := server.NewMux([]*server.Route{route.Route}, enableH2c)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "hello", w.Body.String())
		})
	}
}

func TestHttpServer_ServeAndShutdown(t *testing.T) {
	route := server.AsRoute("/", http.HandlerFunc(helloHandler))

	srv := server.NewHttpServer(server.HttpServerParams{
		Context: context.Background(),
		Config:  server.HttpConfig{Host: "127.0.0.1", Port: 0},
		Routes:  []*server.Route{route.Route},
		Logger:  zaptest.NewLogger(t),
	})

	listener, err := srv.Listen(context.Background())
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(listener)
	}()

	res, err := http.Get("http://" + listener.Addr().String() + "/")
	require.NoError(t, err)

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "hello", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-served)
}
