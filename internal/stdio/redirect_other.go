//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package stdio

import "os"

// Acquire is not supported on this platform.
func Acquire(stdout, stderr *os.File) (*os.File, error) {
	return nil, ErrUnsupported
}
