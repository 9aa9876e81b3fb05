package http

import (
	"legacy-http/http/query"
	"legacy-http/lib/pointer"
	"strings"

	"github.com/pkg/errors"
)

// Request is a fully resolved outgoing request.
// Params from the options are already folded into URL.
type Request struct {
	Body

	Method          RequestMethod
	URL             string
	Headers         *Headers
	WithCredentials bool
	ResponseType    ResponseContentType

	contentType ContentType
}

// NewRequest resolves opts into a request. A URL is required.
// The method defaults to GET.
func NewRequest(opts RequestOptions) (*Request, error) {
	if opts.URL == nil || *opts.URL == "" {
		return nil, ErrURLRequired
	}

	method := MethodGet
	if opts.Method != nil {
		var err error
		if method, err = ParseRequestMethod(string(*opts.Method)); err != nil {
			return nil, errors.Wrap(err, "normalizing method")
		}
	}

	req := &Request{
		Body:            Body{body: cloneBody(opts.Body)},
		Method:          method,
		URL:             appendParams(*opts.URL, opts.Params),
		Headers:         opts.Headers.Clone(),
		WithCredentials: pointer.Deref(opts.WithCredentials, false),
		ResponseType:    pointer.Deref(opts.ResponseType, ResponseContentText),
	}
	if req.Headers == nil {
		req.Headers = NewHeaders(nil)
	}

	req.contentType = req.DetectContentType()

	return req, nil
}

func appendParams(url string, params *query.Params) string {
	if params == nil {
		return url
	}
	encoded := params.String()
	if encoded == "" {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
		if strings.HasSuffix(url, "&") || strings.HasSuffix(url, "?") {
			sep = ""
		}
	}
	return url + sep + encoded
}

// ContentType returns the content type detected when the request was built.
func (r *Request) ContentType() ContentType { return r.contentType }

// DetectContentType inspects the Content-Type header first and falls back to the body kind.
func (r *Request) DetectContentType() ContentType {
	v, ok := r.Headers.Get("Content-Type")
	if !ok {
		return r.detectContentTypeFromBody()
	}

	mediaType, _, _ := strings.Cut(v, ";")
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "application/json":
		return ContentTypeJSON
	case "application/x-www-form-urlencoded":
		return ContentTypeForm
	case "multipart/form-data":
		return ContentTypeFormData
	case "text/plain", "text/html":
		return ContentTypeText
	case "application/octet-stream":
		if _, ok := r.body.([]byte); ok {
			return ContentTypeArrayBuffer
		}
		return ContentTypeBlob
	}
	return r.detectContentTypeFromBody()
}

func (r *Request) detectContentTypeFromBody() ContentType {
	switch r.body.(type) {
	case nil:
		return ContentTypeNone
	case *query.Params:
		return ContentTypeForm
	case []byte:
		return ContentTypeArrayBuffer
	case string:
		return ContentTypeText
	}
	return ContentTypeJSON
}

// Payload returns the body serialized for the detected content type:
// a string for text, JSON and form bodies, bytes for binary bodies,
// the raw value for form-data and nil when there is no body.
func (r *Request) Payload() (any, error) {
	switch r.contentType {
	case ContentTypeJSON, ContentTypeText, ContentTypeForm:
		return r.Text()
	case ContentTypeArrayBuffer, ContentTypeBlob:
		return r.Bytes()
	case ContentTypeFormData:
		return r.body, nil
	}
	return nil, nil
}
