package http

import (
	"legacy-http/http/query"
	"legacy-http/lib/pointer"
)

// RequestOptions describes how to build a [Request].
// A nil field means "not set", which is distinct from an explicit empty value.
type RequestOptions struct {
	Method  *RequestMethod
	Headers *Headers
	// Body is nil, string, []byte, *query.Params or a JSON-serializable value.
	Body            any
	URL             *string
	Params          *query.Params
	WithCredentials *bool
	ResponseType    *ResponseContentType
}

// BaseRequestOptions returns the defaults applied to every request: GET with no headers.
func BaseRequestOptions() RequestOptions {
	return RequestOptions{
		Method:  pointer.To(MethodGet),
		Headers: NewHeaders(nil),
	}
}

// Merge returns a new value where every field set in override replaces the one in o.
// Headers and Params are replaced as a whole, never combined.
// Neither o nor override is modified, and the result shares no
// headers, params or byte slices with them.
func (o RequestOptions) Merge(override *RequestOptions) RequestOptions {
	out := o.clone()
	if override == nil {
		return out
	}

	if override.Method != nil {
		out.Method = pointer.To(*override.Method)
	}
	if override.Headers != nil {
		out.Headers = override.Headers.Clone()
	}
	if override.Body != nil {
		out.Body = cloneBody(override.Body)
	}
	if override.URL != nil {
		out.URL = pointer.To(*override.URL)
	}
	if override.Params != nil {
		out.Params = override.Params.Clone()
	}
	if override.WithCredentials != nil {
		out.WithCredentials = pointer.To(*override.WithCredentials)
	}
	if override.ResponseType != nil {
		out.ResponseType = pointer.To(*override.ResponseType)
	}

	return out
}

func (o RequestOptions) clone() RequestOptions {
	return RequestOptions{
		Method:          clonePtr(o.Method),
		Headers:         o.Headers.Clone(),
		Body:            cloneBody(o.Body),
		URL:             clonePtr(o.URL),
		Params:          cloneParams(o.Params),
		WithCredentials: clonePtr(o.WithCredentials),
		ResponseType:    clonePtr(o.ResponseType),
	}
}

// ResponseOptions describes how to build a [Response].
// A nil field means "not set".
type ResponseOptions struct {
	Body       any
	Status     *int
	Headers    *Headers
	StatusText *string
	Type       *ResponseType
	URL        *string
}

// BaseResponseOptions returns 200 "Ok" with no headers.
func BaseResponseOptions() ResponseOptions {
	return ResponseOptions{
		Status:     pointer.To(200),
		StatusText: pointer.To("Ok"),
		Type:       pointer.To(ResponseTypeDefault),
		Headers:    NewHeaders(nil),
	}
}

// Merge follows the same rules as [RequestOptions.Merge].
func (o ResponseOptions) Merge(override *ResponseOptions) ResponseOptions {
	out := o.clone()
	if override == nil {
		return out
	}

	if override.Body != nil {
		out.Body = cloneBody(override.Body)
	}
	if override.Status != nil {
		out.Status = pointer.To(*override.Status)
	}
	if override.Headers != nil {
		out.Headers = override.Headers.Clone()
	}
	if override.StatusText != nil {
		out.StatusText = pointer.To(*override.StatusText)
	}
	if override.Type != nil {
		out.Type = pointer.To(*override.Type)
	}
	if override.URL != nil {
		out.URL = pointer.To(*override.URL)
	}

	return out
}

func (o ResponseOptions) clone() ResponseOptions {
	return ResponseOptions{
		Body:       cloneBody(o.Body),
		Status:     clonePtr(o.Status),
		Headers:    o.Headers.Clone(),
		StatusText: clonePtr(o.StatusText),
		Type:       clonePtr(o.Type),
		URL:        clonePtr(o.URL),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return pointer.To(*p)
}

func cloneParams(p *query.Params) *query.Params {
	if p == nil {
		return nil
	}
	return p.Clone()
}
