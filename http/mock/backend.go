// Package mock provides an in-memory [http.ConnectionBackend] whose
// connections are resolved by hand, for testing code built on the client.
package mock

import (
	"context"
	"legacy-http/http"
	"legacy-http/lib/ds/queue"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

var ErrPendingConnections = errors.New("pending connections remain")

type Backend struct {
	mu        sync.Mutex
	conns     []*Connection
	unclaimed *queue.Queue[*Connection]

	// signal has capacity 1 and wakes a waiter in Next.
	signal chan struct{}

	logger *slog.Logger
}

var _ http.ConnectionBackend = (*Backend)(nil)

// NewBackend creates an empty backend. A nil logger discards everything.
func NewBackend(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Backend{
		unclaimed: queue.New[*Connection](0),
		signal:    make(chan struct{}, 1),
		logger:    logger,
	}
}

// CreateConnection opens a connection for req. It stays open until it is
// resolved through [Connection.Respond], [Connection.Fail] or [Backend.ResolveAll].
func (b *Backend) CreateConnection(req *http.Request) http.Connection {
	conn := newConnection(req, b.logger)

	b.mu.Lock()
	b.conns = append(b.conns, conn)
	b.unclaimed.Enqueue(conn)
	b.mu.Unlock()

	b.notify()

	b.logger.Debug("connection created",
		"conn", conn.id, "method", req.Method, "url", req.URL)

	return conn
}

func (b *Backend) notify() {
	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Next returns the oldest connection not yet returned by Next,
// waiting for one to be created if there is none.
func (b *Backend) Next(ctx context.Context) (*Connection, error) {
	for {
		b.mu.Lock()
		conn, err := b.unclaimed.Dequeue()
		remaining := b.unclaimed.Len()
		b.mu.Unlock()

		if err == nil {
			if remaining > 0 {
				// Another waiter may have lost the signal to us.
				b.notify()
			}
			return conn, nil
		}

		select {
		case <-b.signal:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Connections returns every connection created so far, in creation order.
func (b *Backend) Connections() []*Connection {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Connection, len(b.conns))
	copy(out, b.conns)
	return out
}

// Pending returns the connections that are not resolved yet.
func (b *Backend) Pending() []*Connection {
	pending := make([]*Connection, 0)
	for _, conn := range b.Connections() {
		if !conn.ReadyState().Resolved() {
			pending = append(pending, conn)
		}
	}
	return pending
}

func (b *Backend) VerifyNoPendingRequests() error {
	if n := len(b.Pending()); n > 0 {
		return errors.Wrapf(ErrPendingConnections, "%d connection(s)", n)
	}
	return nil
}

// ResolveAll marks every pending connection as done.
// Waiters of those connections get [ErrResolvedWithoutResponse].
func (b *Backend) ResolveAll() {
	for _, conn := range b.Pending() {
		_ = conn.Fail(ErrResolvedWithoutResponse)
	}

	b.mu.Lock()
	_ = b.unclaimed.Drain()
	b.mu.Unlock()
}
