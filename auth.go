package quarry

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quarrydb/quarry-go/api"
)

// Authentication applies credentials to an outgoing request.
type Authentication interface {
	// Apply adds the credential headers to the request.
	Apply(header http.Header)
}

// basicAuth authenticates with username and password.
type basicAuth struct {
	username string
	password string
}

// BasicAuth returns username/password credentials.
func BasicAuth(username, password string) Authentication {
	return basicAuth{username: username, password: password}
}

func (a basicAuth) Apply(header http.Header) {
	credentials := base64.StdEncoding.EncodeToString([]byte(a.username + ":" + a.password))
	header.Set("Authorization", "Basic "+credentials)
}

// JWT authenticates with a bearer token issued by the server. The
// token's expiry claim is read without signature verification so the
// caller can decide when to log in again; the server remains the
// authority on validity.
type JWT struct {
	token  string
	expiry time.Time
}

// NewJWT wraps a bearer token. An unparseable token is still usable;
// it simply reports no expiry.
func NewJWT(token string) *JWT {
	a := &JWT{token: token}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			a.expiry = exp.Time
		}
	}
	return a
}

// Token returns the raw bearer token.
func (a *JWT) Token() string { return a.token }

// Expiry returns the token's expiration time, if the token carries one.
func (a *JWT) Expiry() (time.Time, bool) {
	return a.expiry, !a.expiry.IsZero()
}

// IsExpired reports whether the token's expiry claim has passed.
// Tokens without an expiry never report expired.
func (a *JWT) IsExpired() bool {
	return !a.expiry.IsZero() && time.Now().After(a.expiry)
}

func (a *JWT) Apply(header http.Header) {
	header.Set("Authorization", "Bearer "+a.token)
}

// loginRequest obtains a bearer token. Unlike the document family it
// reads its result from a nested response field, which is why the
// envelope slots live on the Method contract and not in any one
// operation family.
type loginRequest struct {
	username string
	password string
}

type loginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) Operation() api.Operation { return api.OperationCreate }

func (r loginRequest) Path() string { return pathOpenAuth }

func (r loginRequest) Parameters() api.Parameters { return api.Parameters{} }

func (r loginRequest) Header() api.Parameters { return api.Parameters{} }

func (r loginRequest) Content() any {
	return loginCredentials{Username: r.username, Password: r.password}
}

func (r loginRequest) ReturnType() api.ReturnType {
	return api.ReturnType{ResultField: "jwt", CodeField: "code"}
}

func (r loginRequest) Result() string { return "" }

var _ api.Method[string] = loginRequest{}

// Login authenticates against the server and returns a JWT usable with
// WithAuthentication.
func Login(ctx context.Context, c *Client, username, password string) (*JWT, error) {
	token, err := Execute(ctx, c, loginRequest{username: username, password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return NewJWT(token), nil
}
