package stdio

import (
	"os"
)

// Acquire hands out stdout as the data sink and swaps os.Stdout for stderr.
// Only writes through os.Stdout are redirected, descriptors inherited by
// child processes are not.
func Acquire(stdout, stderr *os.File) (*os.File, error) {
	out := stdout

	if stdout == os.Stdout {
		os.Stdout = stderr
	}

	return out, nil
}
