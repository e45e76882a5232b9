//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package stdio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/echoshim/internal/stdio"
)

func createFile(t *testing.T, name string) *os.File {
	f, err := os.Create(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func readFile(t *testing.T, f *os.File) string {
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return string(data)
}

func TestAcquire(t *testing.T) {
	stdout := createFile(t, "stdout")
	stderr := createFile(t, "stderr")

	out, err := stdio.Acquire(stdout, stderr)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, stdio.OutName, out.Name())

	_, err = out.Write([]byte("data"))
	require.NoError(t, err)

	_, err = stdout.Write([]byte("noise"))
	require.NoError(t, err)

	assert.Equal(t, "data", readFile(t, stdout))
	assert.Equal(t, "noise", readFile(t, stderr))
}

func TestAcquire_ClosedStdout(t *testing.T) {
	stdout := createFile(t, "stdout")
	stderr := createFile(t, "stderr")

	require.NoError(t, stdout.Close())

	_, err := stdio.Acquire(stdout, stderr)
	assert.Error(t, err)
}

func TestAcquire_Supported(t *testing.T) {
	stdout := createFile(t, "stdout")
	stderr := createFile(t, "stderr")

	out, err := stdio.Acquire(stdout, stderr)
	assert.NotErrorIs(t, err, stdio.ErrUnsupported)
	require.NotNil(t, out)
	out.Close()
}
