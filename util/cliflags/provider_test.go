package cliflags_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/echoshim/util/cliflags"
)

func readFlags(t *testing.T, args []string, cb func(string) string) map[string]any {
	var mp map[string]any

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level"},
			&cli.IntFlag{Name: "port", Value: 8080},
			&cli.BoolFlag{Name: "h2c"},
			&cli.DurationFlag{Name: "timeout"},
			&cli.StringSliceFlag{Name: "tag"},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			mp, err = cliflags.Provider(ctx, ".", cb).Read()
			return err
		},
	}

	require.NoError(t, app.Run(append([]string{"test"}, args...)))

	return mp
}

func TestProvider(t *testing.T) {
	mp := readFlags(t, []string{
		"--log-level", "debug",
		"--port", "9000",
		"--h2c",
		"--timeout", "3s",
		"--tag", "a", "--tag", "b",
	}, nil)

	assert.Equal(t, "debug", mp["log-level"])
	assert.Equal(t, 9000, mp["port"])
	assert.Equal(t, true, mp["h2c"])
	assert.Equal(t, 3*time.Second, mp["timeout"])
	assert.Equal(t, []string{"a", "b"}, mp["tag"])
}

func TestProvider_OnlySetFlags(t *testing.T) {
	mp := readFlags(t, []string{"--h2c"}, nil)

	assert.Equal(t, map[string]any{"h2c": true}, mp)
}

func TestProvider_Transform(t *testing.T) {
	mp := readFlags(t, []string{"--log-level", "warn"}, func(s string) string {
		return "log." + strings.TrimPrefix(s, "log-")
	})

	assert.Equal(t, map[string]any{
		"log": map[string]any{"level": "warn"},
	}, mp)
}

func TestCLIFlags_ReadBytes(t *testing.T) {
	mp := &cliflags.CLIFlags{}

	_, err := mp.ReadBytes()
	assert.Error(t, err)
}
