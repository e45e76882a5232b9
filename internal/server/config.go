package server

import (
	"net"
	"strconv"
	"time"
)

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Request bodies are not bounded.
	ReadHeaderTimeout time.Duration `conf:"read_header_timeout"`
}

// Address returns the address the server listens on.
func (c HttpConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
