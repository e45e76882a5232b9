package gateway

import (
	"errors"
	"io"
)

// Well-known environ keys.
const (
	InputKey         = "wsgi.input"
	RequestMethodKey = "REQUEST_METHOD"
	PathInfoKey      = "PATH_INFO"
	QueryStringKey   = "QUERY_STRING"
	ContentTypeKey   = "CONTENT_TYPE"
	ContentLengthKey = "CONTENT_LENGTH"
	RequestIDKey     = "echoshim.request_id"
)

var (
	ErrMissingInput   = errors.New("environ has no input stream")
	ErrMalformedInput = errors.New("environ input stream is not readable")
)

// Environ describes a single inbound request.
type Environ map[string]any

// Input returns the request input stream.
func (e Environ) Input() (io.Reader, error) {
	value, ok := e[InputKey]
	if !ok || value == nil {
		return nil, ErrMissingInput
	}

	r, ok := value.(io.Reader)
	if !ok {
		return nil, ErrMalformedInput
	}

	return r, nil
}

// String returns the string value for key, or the empty string.
func (e Environ) String(key string) string {
	s, _ := e[key].(string)
	return s
}

// Header is a single response header.
type Header struct {
	Name  string
	Value string
}

// StartResponse begins a response with the given status line and headers.
type StartResponse func(status string, headers []Header)
