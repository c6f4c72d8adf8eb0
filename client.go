package quarry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/quarrydb/quarry-go/api"
	"github.com/quarrydb/quarry-go/transport"
)

// pathOpenAuth is the token endpoint. Routes under /_open are global
// and are not prefixed with a database name.
const pathOpenAuth = "/_open/auth"

// Client is a Quarry client. It dispatches operation descriptors: the
// Prepare contract yields the request pieces, the transport performs
// the call, and the Method contract's declared result type fixes how
// the response is decoded.
//
// It is safe for concurrent use from multiple goroutines.
type Client struct {
	config    *clientConfig
	transport transport.Transport
	logger    hclog.Logger
}

// New creates a new Quarry client with the given options.
//
// Example:
//
//	// Local server, default database
//	client, err := quarry.New()
//
//	// Authenticated client
//	client, err := quarry.New(
//	    quarry.WithEndpoint("https://db.example.com:8529"),
//	    quarry.WithDatabase("orders"),
//	    quarry.WithAuthentication(quarry.BasicAuth("svc", "secret")),
//	)
func New(opts ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var t transport.Transport
	if len(config.transports) > 0 {
		if len(config.transports) == 1 {
			t = config.transports[0]
		} else {
			t = transport.NewMulti(config.transports...)
		}
	} else {
		httpOpts := []transport.HTTPOption{}
		if config.httpClient != nil {
			httpOpts = append(httpOpts, transport.WithHTTPClient(config.httpClient))
		} else if config.timeout > 0 {
			httpOpts = append(httpOpts, transport.WithTimeout(config.timeout))
		}
		if strings.HasPrefix(config.endpoint, "https://") {
			t = transport.NewHTTP(httpOpts...)
		} else {
			t = transport.NewInsecureHTTP(httpOpts...)
		}
	}

	return &Client{
		config:    config,
		transport: t,
		logger:    config.logger,
	}, nil
}

// MustNew creates a new Quarry client with the given options. Panics if
// the configuration is invalid. Use New() for error handling in
// production code.
func MustNew(opts ...Option) *Client {
	client, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// validateConfig validates the client configuration.
func validateConfig(config *clientConfig) error {
	if config.endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if config.database == "" {
		return fmt.Errorf("database cannot be empty")
	}
	if config.timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

// Database returns the database name requests are scoped to.
func (c *Client) Database() string {
	return c.config.database
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Execute dispatches a prepared method descriptor and decodes the
// response into the method's declared result type R.
//
// Example:
//
//	doc, err := quarry.Execute(ctx, client,
//	    document.NewGetDocument[User](document.NewID("users", "42")))
func Execute[R any](ctx context.Context, c *Client, m api.Method[R]) (R, error) {
	result := m.Result()

	// Security check: credentials must not travel in the clear.
	if c.config.enforceSecurity && c.config.auth != nil && !c.transport.IsEncrypted() {
		return result, ErrEncryptedTransportRequired
	}

	req, err := c.assembleRequest(m)
	if err != nil {
		return result, err
	}

	requestID := uuid.NewString()
	start := time.Now()
	if c.logger.IsDebug() {
		c.logger.Debug("request assembled",
			"request_id", requestID,
			"operation", m.Operation().String(),
			"method", req.Method,
			"url", req.URL,
		)
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return result, fmt.Errorf("transport: %w", err)
	}

	if c.logger.IsDebug() {
		c.logger.Debug("response received",
			"request_id", requestID,
			"status", resp.StatusCode,
			"duration", time.Since(start).String(),
		)
	}

	return interpretResponse(m, resp, result)
}

// assembleRequest compiles a Prepare contract into a transport request.
func (c *Client) assembleRequest(m api.Prepare) (*transport.Request, error) {
	requestURL := c.config.endpoint + c.requestPath(m.Path())
	if query := encodeParameters(m.Parameters()); query != "" {
		requestURL += "?" + query
	}

	header := make(http.Header)
	headerParams := m.Header()
	for _, pair := range headerParams.Pairs() {
		header.Set(pair.Name, pair.Value)
	}
	if c.config.auth != nil {
		c.config.auth.Apply(header)
	}

	var body []byte
	if content := m.Content(); content != nil {
		encoded, err := json.Marshal(content)
		if err != nil {
			return nil, fmt.Errorf("encode content: %w", err)
		}
		body = encoded
	}

	return &transport.Request{
		Method: verbFor(m.Operation()),
		URL:    requestURL,
		Header: header,
		Body:   body,
	}, nil
}

// requestPath prefixes the database scope except for global /_open
// routes.
func (c *Client) requestPath(path string) string {
	if strings.HasPrefix(path, "/_open/") {
		return path
	}
	return "/_db/" + c.config.database + path
}

// verbFor maps an operation kind to its HTTP verb.
func verbFor(op api.Operation) string {
	switch op {
	case api.OperationRead:
		return http.MethodGet
	case api.OperationReadHeader:
		return http.MethodHead
	case api.OperationCreate:
		return http.MethodPost
	case api.OperationReplace:
		return http.MethodPut
	case api.OperationModify:
		return http.MethodPatch
	default:
		return http.MethodGet
	}
}

// encodeParameters renders query parameters in insertion order.
func encodeParameters(params api.Parameters) string {
	if params.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, pair := range params.Pairs() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}

// interpretResponse decodes a raw response per the method's declared
// envelope slots and result type.
func interpretResponse[R any](m api.Method[R], resp *transport.Response, result R) (R, error) {
	if resp.StatusCode >= 400 {
		return result, errorFromResponse(resp.StatusCode, resp.Body)
	}

	// Header-only operations answer without a body.
	if m.Operation() == api.OperationReadHeader || len(resp.Body) == 0 {
		return result, nil
	}

	rt := m.ReturnType()
	if rt.CodeField != "" || rt.ResultField != "" {
		var envelope map[string]json.RawMessage
		// Batch results arrive as arrays; those have no envelope to
		// inspect and decode as a whole below.
		if err := json.Unmarshal(resp.Body, &envelope); err == nil {
			if rt.CodeField != "" {
				if raw, ok := envelope[rt.CodeField]; ok {
					var code int
					if err := json.Unmarshal(raw, &code); err == nil && code >= 400 {
						return result, errorFromResponse(code, resp.Body)
					}
				}
			}
			if rt.ResultField != "" {
				raw, ok := envelope[rt.ResultField]
				if !ok {
					return result, fmt.Errorf("quarry: response missing %q field", rt.ResultField)
				}
				if err := json.Unmarshal(raw, &result); err != nil {
					return result, fmt.Errorf("decode result: %w", err)
				}
				return result, nil
			}
		} else if rt.ResultField != "" {
			return result, fmt.Errorf("quarry: response is not an object: %w", err)
		}
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return result, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
