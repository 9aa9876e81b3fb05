package client

import (
	"context"
	"legacy-http/http"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNoResponse = errors.New("connection resolved without error or response")

type Client struct {
	backend  http.ConnectionBackend
	defaults http.RequestOptions

	opts Options

	logger *slog.Logger
	clock  clock.Clock
}

func New(
	backend http.ConnectionBackend,
	logger *slog.Logger,
	clock clock.Clock,
	opts Options,
) *Client {
	return &Client{
		backend:  backend,
		defaults: http.BaseRequestOptions().Merge(&opts.Defaults),
		opts:     opts,
		logger:   logger,
		clock:    clock,
	}
}

// Defaults returns a copy of the options every call starts from.
func (c *Client) Defaults() http.RequestOptions {
	return c.defaults.Merge(nil)
}

// Request sends an already built request.
func (c *Client) Request(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.opts.XSRF != nil {
		c.opts.XSRF.ConfigureRequest(req)
	}

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = c.clock.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	logger := c.logger.With("request", uuid.NewString())
	logger.Debug("sending request", "method", req.Method, "url", req.URL)

	conn := c.backend.CreateConnection(req)

	res, err := conn.Response(ctx)
	if err != nil {
		logger.Debug("request failed", "state", conn.ReadyState(), "error", err)
		return nil, errors.Wrap(err, "waiting for response")
	}
	if res == nil {
		logger.Debug("request failed", "state", conn.ReadyState(), "error", ErrNoResponse)
		return nil, ErrNoResponse
	}

	logger.Debug("response received", "status", res.Status)

	if c.opts.RejectNotOK && !res.OK() {
		return res, &http.StatusError{Response: res}
	}

	return res, nil
}

// Do merges, in order, the client defaults, the call's method, url and body,
// and opts. Anything set in opts wins, including its Method and URL.
// A nil body leaves the body unset.
func (c *Client) Do(
	ctx context.Context,
	method http.RequestMethod, url string, body any,
	opts *http.RequestOptions,
) (*http.Response, error) {
	call := http.RequestOptions{Method: &method, URL: &url, Body: body}

	req, err := http.NewRequest(c.defaults.Merge(&call).Merge(opts))
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	return c.Request(ctx, req)
}

func (c *Client) Get(ctx context.Context, url string, opts *http.RequestOptions) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, url, nil, opts)
}

func (c *Client) Post(ctx context.Context, url string, body any, opts *http.RequestOptions) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, url, body, opts)
}

func (c *Client) Put(ctx context.Context, url string, body any, opts *http.RequestOptions) (*http.Response, error) {
	return c.Do(ctx, http.MethodPut, url, body, opts)
}

func (c *Client) Delete(ctx context.Context, url string, opts *http.RequestOptions) (*http.Response, error) {
	return c.Do(ctx, http.MethodDelete, url, nil, opts)
}

func (c *Client) Patch(ctx context.Context, url string, body any, opts *http.RequestOptions) (*http.Response, error) {
	return c.Do(ctx, http.MethodPatch, url, body, opts)
}

func (c *Client) Head(ctx context.Context, url string, opts *http.RequestOptions) (*http.Response, error) {
	return c.Do(ctx, http.MethodHead, url, nil, opts)
}

func (c *Client) Options(ctx context.Context, url string, opts *http.RequestOptions) (*http.Response, error) {
	return c.Do(ctx, http.MethodOptions, url, nil, opts)
}
