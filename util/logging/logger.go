package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// Options configures the logger built by New.
type Options struct {
	// Level is the minimum enabled level, info if empty or invalid.
	Level string

	// Format is either production (json) or development (console).
	Format string

	// Name is attached to every entry as the "app" field.
	Name string

	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// New builds a logger writing to stderr. Stdout is never written to,
// it may carry data.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.OutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}
	config.ErrorOutputPaths = []string{"stderr"}

	// every request is logged, none may be sampled away
	config.Sampling = nil

	if opts.Name != "" {
		config.InitialFields = map[string]any{
			"app": opts.Name,
		}
	}

	config.Level = ParseLevel(opts.Level)

	return config.Build()
}

// ParseLevel parses lvl, falling back to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
