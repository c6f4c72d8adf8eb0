package quarry

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeToken builds an unsigned JWT-shaped token with the given claims.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func TestJWT_ReadsExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	auth := NewJWT(makeToken(t, map[string]any{"exp": exp}))

	expiry, ok := auth.Expiry()
	require.True(t, ok)
	assert.Equal(t, exp, expiry.Unix())
	assert.False(t, auth.IsExpired())
}

func TestJWT_ExpiredToken(t *testing.T) {
	auth := NewJWT(makeToken(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()}))
	assert.True(t, auth.IsExpired())
}

func TestJWT_TokenWithoutExpiry(t *testing.T) {
	auth := NewJWT(makeToken(t, map[string]any{"iss": "quarry"}))

	_, ok := auth.Expiry()
	assert.False(t, ok)
	assert.False(t, auth.IsExpired())
}

func TestJWT_OpaqueTokenStillUsable(t *testing.T) {
	auth := NewJWT("not-a-jwt")

	_, ok := auth.Expiry()
	assert.False(t, ok)

	header := make(http.Header)
	auth.Apply(header)
	assert.Equal(t, "Bearer not-a-jwt", header.Get("Authorization"))
}

func TestBasicAuth_Apply(t *testing.T) {
	header := make(http.Header)
	BasicAuth("svc", "secret").Apply(header)

	credentials := base64.StdEncoding.EncodeToString([]byte("svc:secret"))
	assert.Equal(t, "Basic "+credentials, header.Get("Authorization"))
}

func TestLogin(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := makeToken(t, map[string]any{"exp": exp})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Token routes are global: no database prefix.
		assert.Equal(t, "/_open/auth", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"svc","password":"secret"}`, string(body))

		fmt.Fprintf(w, `{"jwt":%q,"code":200}`, token)
	}))
	defer server.Close()

	client, err := New(WithEndpoint(server.URL))
	require.NoError(t, err)
	defer client.Close()

	auth, err := Login(context.Background(), client, "svc", "secret")
	require.NoError(t, err)
	assert.Equal(t, token, auth.Token())
	assert.False(t, auth.IsExpired())
}

func TestLogin_ServerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":true,"code":401,"errorMessage":"wrong credentials"}`))
	}))
	defer server.Close()

	client, err := New(WithEndpoint(server.URL))
	require.NoError(t, err)
	defer client.Close()

	_, err = Login(context.Background(), client, "svc", "wrong")
	assert.True(t, IsUnauthorized(err))
}

func TestLogin_MissingResultField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200}`))
	}))
	defer server.Close()

	client, err := New(WithEndpoint(server.URL))
	require.NoError(t, err)
	defer client.Close()

	_, err = Login(context.Background(), client, "svc", "secret")
	assert.Error(t, err)
}
