package client

import (
	"legacy-http/http"
	"time"
)

type Options struct {
	// Defaults are merged over [http.BaseRequestOptions] and applied to every call.
	Defaults http.RequestOptions

	// Timeout bounds the wait for a response. Zero means no bound besides ctx.
	Timeout time.Duration

	XSRF http.XSRFStrategy

	// RejectNotOK makes calls fail with [*http.StatusError] on a non-2xx response.
	// The response is still returned alongside the error.
	RejectNotOK bool
}
