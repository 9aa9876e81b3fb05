package http

import "context"

// Connection is a single request in flight on some backend.
type Connection interface {
	ReadyState() ReadyState
	Request() *Request
	// Response blocks until the backend resolves the connection or ctx is done.
	Response(ctx context.Context) (*Response, error)
}

// ConnectionBackend opens connections for requests.
type ConnectionBackend interface {
	CreateConnection(req *Request) Connection
}

// XSRFStrategy may decorate a request right before it is handed to a backend,
// typically by copying a token into a header.
type XSRFStrategy interface {
	ConfigureRequest(req *Request)
}
