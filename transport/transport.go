// Package transport provides the HTTP transports a Quarry client
// dispatches prepared requests through.
package transport

import (
	"context"
	"net/http"

	multierror "github.com/hashicorp/go-multierror"
)

// Transport executes a prepared HTTP request against one endpoint.
type Transport interface {
	// Name returns the transport name for logs (e.g. "http").
	Name() string

	// Send executes the request and returns the raw response. The body
	// is fully read before returning.
	Send(ctx context.Context, req *Request) (*Response, error)

	// IsEncrypted returns true if the transport speaks TLS to the
	// server.
	IsEncrypted() bool

	// Close releases any resources held by the transport.
	Close() error
}

// Request is a fully prepared HTTP request.
type Request struct {
	Method string      // HTTP verb
	URL    string      // Absolute URL including query string
	Header http.Header // Request headers
	Body   []byte      // Encoded body, nil for bodiless requests
}

// Response is a raw HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Multi tries a sequence of transports in order until one answers.
// Each request is attempted at most once per transport; this is
// endpoint failover, not retry.
type Multi struct {
	transports []Transport
}

// NewMulti creates a multi-transport with failover support.
func NewMulti(transports ...Transport) *Multi {
	return &Multi{transports: transports}
}

func (m *Multi) Name() string {
	if len(m.transports) > 0 {
		return "multi(" + m.transports[0].Name() + "+fallback)"
	}
	return "multi"
}

func (m *Multi) Send(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error
	for _, t := range m.transports {
		resp, err := t.Send(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (m *Multi) IsEncrypted() bool {
	// Only encrypted if ALL transports are encrypted
	for _, t := range m.transports {
		if !t.IsEncrypted() {
			return false
		}
	}
	return len(m.transports) > 0
}

func (m *Multi) Close() error {
	var errs *multierror.Error
	for _, t := range m.transports {
		errs = multierror.Append(errs, t.Close())
	}
	return errs.ErrorOrNil()
}

// Transports returns the underlying transports.
func (m *Multi) Transports() []Transport {
	return m.transports
}
