//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package stdio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Acquire duplicates the descriptor of stdout into a new file, then points
// the stdout descriptor at stderr. Writes to the returned file reach the
// original stdout target, everything else written to stdout lands on stderr.
func Acquire(stdout, stderr *os.File) (*os.File, error) {
	outFd, err := unix.Dup(int(stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("dup stdout: %w", err)
	}

	unix.CloseOnExec(outFd)

	if err := unix.Dup2(int(stderr.Fd()), int(stdout.Fd())); err != nil {
		unix.Close(outFd)
		return nil, fmt.Errorf("redirect stdout to stderr: %w", err)
	}

	return os.NewFile(uintptr(outFd), OutName), nil
}
