package http

import (
	"github.com/pkg/errors"
)

var ErrURLRequired = errors.New("request url is required")

// ParseError is returned when a body can't be read in the requested form,
// e.g. decoding non-JSON text as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parsing body: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// StatusError carries a response whose status is outside 200-299.
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string { return e.Response.String() }
