package quarry

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/quarrydb/quarry-go/transport"
)

// Option configures a Client.
type Option func(*clientConfig)

// clientConfig holds client configuration.
type clientConfig struct {
	endpoint        string
	database        string
	auth            Authentication
	transports      []transport.Transport
	httpClient      *http.Client
	timeout         time.Duration
	logger          hclog.Logger
	enforceSecurity bool
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		endpoint:        "http://localhost:8529",
		database:        "_system",
		timeout:         30 * time.Second,
		logger:          hclog.NewNullLogger(),
		enforceSecurity: true,
	}
}

// WithEndpoint sets the server base URL (default:
// "http://localhost:8529").
func WithEndpoint(url string) Option {
	return func(c *clientConfig) {
		c.endpoint = url
	}
}

// WithDatabase sets the database name (default: "_system").
func WithDatabase(name string) Option {
	return func(c *clientConfig) {
		c.database = name
	}
}

// WithAuthentication sets the credentials applied to every request.
func WithAuthentication(auth Authentication) Option {
	return func(c *clientConfig) {
		c.auth = auth
	}
}

// WithTransports sets the transport priority order with automatic
// failover. The first transport is tried first; on failure, subsequent
// transports are tried.
func WithTransports(transports ...transport.Transport) Option {
	return func(c *clientConfig) {
		c.transports = transports
	}
}

// WithHTTPClient sets a custom HTTP client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout (default: 30s). Ignored when a
// custom HTTP client or custom transports are given.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithLogger sets the logger for request-level debug output. The
// default discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithoutSecurityEnforcement disables security enforcement (NOT
// RECOMMENDED). By default, authenticated requests are blocked on
// unencrypted transports. Only disable this for testing or when using a
// trusted network.
func WithoutSecurityEnforcement() Option {
	return func(c *clientConfig) {
		c.enforceSecurity = false
	}
}
