package mock

import (
	"context"
	"legacy-http/http"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrAlreadyResolved         = errors.New("connection has already been resolved")
	ErrResolvedWithoutResponse = errors.New("connection resolved without a response")
	ErrNilResponse             = errors.New("response must not be nil")
)

type Connection struct {
	id  string
	req *http.Request

	mu    sync.Mutex
	state http.ReadyState
	done  chan struct{}
	res   *http.Response
	err   error

	logger *slog.Logger
}

var _ http.Connection = (*Connection)(nil)

func newConnection(req *http.Request, logger *slog.Logger) *Connection {
	id := uuid.NewString()
	return &Connection{
		id:     id,
		req:    req,
		state:  http.ReadyStateOpen,
		done:   make(chan struct{}),
		logger: logger.With("conn", id),
	}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) Request() *http.Request { return c.req }

func (c *Connection) ReadyState() http.ReadyState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Respond resolves the connection with res.
func (c *Connection) Respond(res *http.Response) error {
	if res == nil {
		return ErrNilResponse
	}
	return c.resolve(http.ReadyStateDone, res, nil)
}

// Fail resolves the connection with err.
func (c *Connection) Fail(err error) error {
	return c.resolve(http.ReadyStateDone, nil, err)
}

// Response waits for the connection to be resolved.
// If ctx ends first, the connection is cancelled.
func (c *Connection) Response(ctx context.Context) (*http.Response, error) {
	select {
	case <-c.done:
		return c.res, c.err
	case <-ctx.Done():
		if err := c.resolve(http.ReadyStateCancelled, nil, ctx.Err()); err != nil {
			// Resolved concurrently, prefer the actual result.
			<-c.done
			return c.res, c.err
		}
		return nil, ctx.Err()
	}
}

func (c *Connection) resolve(state http.ReadyState, res *http.Response, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Resolved() {
		return ErrAlreadyResolved
	}

	c.state = state
	c.res, c.err = res, err
	close(c.done)

	c.logger.Debug("connection resolved", "state", state, "error", err)

	return nil
}
