package config

import (
	_ "embed"

	"github.com/lambda-feedback/echoshim/util/conf"
)

//go:embed schema.json
var Schema []byte

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`
}
