package http

import (
	"strings"

	"github.com/pkg/errors"
)

type RequestMethod string

const (
	MethodGet     RequestMethod = "GET"
	MethodPost    RequestMethod = "POST"
	MethodPut     RequestMethod = "PUT"
	MethodDelete  RequestMethod = "DELETE"
	MethodOptions RequestMethod = "OPTIONS"
	MethodHead    RequestMethod = "HEAD"
	MethodPatch   RequestMethod = "PATCH"
)

// ParseRequestMethod matches s against the supported methods, ignoring case.
func ParseRequestMethod(s string) (RequestMethod, error) {
	m := RequestMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete,
		MethodOptions, MethodHead, MethodPatch:
		return m, nil
	}
	return "", errors.Errorf("invalid request method: %q", s)
}

// ReadyState tracks a connection's progress.
type ReadyState uint

const (
	ReadyStateUnsent ReadyState = iota
	ReadyStateOpen
	ReadyStateHeadersReceived
	ReadyStateLoading
	ReadyStateDone
	ReadyStateCancelled
)

func (s ReadyState) String() string {
	switch s {
	case ReadyStateUnsent:
		return "unsent"
	case ReadyStateOpen:
		return "open"
	case ReadyStateHeadersReceived:
		return "headers-received"
	case ReadyStateLoading:
		return "loading"
	case ReadyStateDone:
		return "done"
	case ReadyStateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Resolved reports whether no more progress can happen.
func (s ReadyState) Resolved() bool {
	return s == ReadyStateDone || s == ReadyStateCancelled
}

// ResponseType mirrors the fetch response types.
// Reference: https://fetch.spec.whatwg.org/#concept-response-type
type ResponseType uint

const (
	ResponseTypeBasic ResponseType = iota
	ResponseTypeCors
	ResponseTypeDefault
	ResponseTypeError
	ResponseTypeOpaque
)

// ContentType is the kind of payload a request carries.
type ContentType uint

const (
	ContentTypeNone ContentType = iota
	ContentTypeJSON
	ContentTypeForm
	ContentTypeFormData
	ContentTypeText
	ContentTypeBlob
	ContentTypeArrayBuffer
)

// ResponseContentType is the buffer kind a caller expects the response body in.
type ResponseContentType uint

const (
	ResponseContentText ResponseContentType = iota
	ResponseContentJSON
	ResponseContentArrayBuffer
	ResponseContentBlob
)
