package http

import (
	"fmt"
	"legacy-http/lib/pointer"
)

// Response is a received response.
// Build one from options merged over [BaseResponseOptions] to get the usual defaults.
type Response struct {
	Body

	Type       ResponseType
	Status     int
	StatusText string
	URL        string
	Headers    *Headers
}

func NewResponse(opts ResponseOptions) *Response {
	res := &Response{
		Body:    Body{body: cloneBody(opts.Body)},
		Type:    pointer.Deref(opts.Type, ResponseTypeBasic),
		Status:  pointer.Deref(opts.Status, 0),
		URL:     pointer.Deref(opts.URL, ""),
		Headers: opts.Headers.Clone(),
	}
	res.StatusText = pointer.Deref(opts.StatusText, StatusText(res.Status))
	if res.Headers == nil {
		res.Headers = NewHeaders(nil)
	}
	return res
}

// OK reports whether the status is in the range 200-299.
func (r *Response) OK() bool {
	return 200 <= r.Status && r.Status <= 299
}

func (r *Response) String() string {
	return fmt.Sprintf("Response with status: %d %s for URL: %s", r.Status, r.StatusText, r.URL)
}
