package stdio_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/echoshim/internal/echo"
	"github.com/lambda-feedback/echoshim/internal/stdio"
)

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("bad descriptor")
}

func setupAdapter(t *testing.T, streams stdio.Streams) *stdio.Adapter {
	log := zaptest.NewLogger(t)

	return stdio.NewAdapter(stdio.AdapterParams{
		Streams: streams,
		Handler: echo.NewHandler(echo.HandlerParams{Log: log}),
		Log:     log,
	})
}

func TestAdapter_Run(t *testing.T) {
	input := []byte("binary\x00data\xff")

	var out bytes.Buffer
	adapter := setupAdapter(t, stdio.Streams{
		In:  bytes.NewReader(input),
		Out: &out,
	})

	require.NoError(t, adapter.Run(context.Background()))
	assert.Equal(t, input, out.Bytes())
}

func TestAdapter_Run_Empty(t *testing.T) {
	var out bytes.Buffer
	adapter := setupAdapter(t, stdio.Streams{
		In:  strings.NewReader(""),
		Out: &out,
	})

	require.NoError(t, adapter.Run(context.Background()))
	assert.Zero(t, out.Len())
}

func TestAdapter_Run_ReadError(t *testing.T) {
	var out bytes.Buffer
	adapter := setupAdapter(t, stdio.Streams{
		In:  errReader{},
		Out: &out,
	})

	assert.Error(t, adapter.Run(context.Background()))
	assert.Zero(t, out.Len())
}

func TestAdapter_Run_WriteError(t *testing.T) {
	adapter := setupAdapter(t, stdio.Streams{
		In:  strings.NewReader("data"),
		Out: errWriter{},
	})

	err := adapter.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestAdapter_Run_CanceledContext(t *testing.T) {
	var out bytes.Buffer
	adapter := setupAdapter(t, stdio.Streams{
		In:  strings.NewReader("data"),
		Out: &out,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, adapter.Run(ctx), context.Canceled)
	assert.Zero(t, out.Len())
}

func runModule(t *testing.T, streams stdio.Streams) int {
	app := fxtest.New(t,
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zap.NewNop()),
		stdio.Module(streams),
	)

	app.RequireStart()
	sig := <-app.Wait()
	app.RequireStop()

	return sig.ExitCode
}

func TestModule(t *testing.T) {
	var out bytes.Buffer

	exitCode := runModule(t, stdio.Streams{
		In:  strings.NewReader("through fx"),
		Out: &out,
	})

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "through fx", out.String())
}

func TestModule_Failure(t *testing.T) {
	exitCode := runModule(t, stdio.Streams{
		In:  errReader{},
		Out: &bytes.Buffer{},
	})

	assert.Equal(t, 1, exitCode)
}

func TestModule_ShutdownBeforeEcho(t *testing.T) {
	in, writer := io.Pipe()
	defer writer.Close()

	var out bytes.Buffer

	app := fxtest.New(t,
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zap.NewNop()),
		stdio.Module(stdio.Streams{In: in, Out: &out}),
	)

	app.RequireStart()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := app.Stop(ctx)
	assert.ErrorIs(t, err, stdio.ErrInterrupted)
	assert.Zero(t, out.Len())
}
