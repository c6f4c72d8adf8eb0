package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTP sends prepared requests over plain HTTP or HTTPS using a
// net/http client.
type HTTP struct {
	httpClient *http.Client
	encrypted  bool
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(t *HTTP) {
		t.httpClient = client
	}
}

// WithTimeout sets the per-request timeout on the transport's HTTP
// client.
func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTP) {
		t.httpClient.Timeout = d
	}
}

// NewHTTP creates a new HTTPS transport. It refuses plain-http URLs;
// use NewInsecureHTTP for those.
func NewHTTP(opts ...HTTPOption) *HTTP {
	t := &HTTP{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		encrypted: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewInsecureHTTP creates an HTTP transport that accepts plain-http
// endpoint URLs and reports itself as unencrypted.
func NewInsecureHTTP(opts ...HTTPOption) *HTTP {
	t := NewHTTP(opts...)
	t.encrypted = false
	return t
}

func (t *HTTP) Name() string { return "http" }

func (t *HTTP) IsEncrypted() bool { return t.encrypted }

func (t *HTTP) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}

// Send executes the request.
func (t *HTTP) Send(ctx context.Context, req *Request) (*Response, error) {
	if t.encrypted && strings.HasPrefix(req.URL, "http://") {
		return nil, fmt.Errorf("transport: plain-http URL %q on encrypted transport", req.URL)
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for name, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
