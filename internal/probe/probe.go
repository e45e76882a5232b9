// Package probe detects optional capabilities of the host.
package probe

import (
	"os/exec"
)

// Result describes the outcome of a capability check.
type Result struct {
	Name      string
	Available bool
	Path      string
	Reason    string
}

// Check looks up the executable name on PATH. It never fails; when the
// executable cannot be found the failure reason is reported instead.
func Check(name string) Result {
	path, err := exec.LookPath(name)
	if err != nil {
		return Result{
			Name:   name,
			Reason: err.Error(),
		}
	}

	return Result{
		Name:      name,
		Available: true,
		Path:      path,
	}
}

// CheckAll checks each name in order.
func CheckAll(names ...string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, Check(name))
	}
	return results
}
