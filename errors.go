package quarry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for use with errors.Is.
var (
	ErrBadRequest       = &Error{Status: http.StatusBadRequest, Message: "bad request"}
	ErrUnauthorized     = &Error{Status: http.StatusUnauthorized, Message: "authentication required"}
	ErrForbidden        = &Error{Status: http.StatusForbidden, Message: "insufficient permissions"}
	ErrNotFound         = &Error{Status: http.StatusNotFound, Message: "document not found"}
	ErrConflict         = &Error{Status: http.StatusConflict, Message: "conflict"}
	ErrRevisionConflict = &Error{Status: http.StatusPreconditionFailed, Message: "revision mismatch"}

	// ErrEncryptedTransportRequired is returned when credentials would
	// travel over an unencrypted transport.
	ErrEncryptedTransportRequired = errors.New("quarry: authenticated requests require encrypted transport")
)

// Error is an error reported by the server. Status is the HTTP-level
// status code, ErrorNum the server's own error number when present.
type Error struct {
	Status   int    // HTTP status code
	ErrorNum int    // Server error number (0 if absent)
	Message  string // Human-readable message
}

func (e *Error) Error() string {
	if e.ErrorNum != 0 {
		return fmt.Sprintf("quarry [%d/%d]: %s", e.Status, e.ErrorNum, e.Message)
	}
	return fmt.Sprintf("quarry [%d]: %s", e.Status, e.Message)
}

// Is implements errors.Is: two Errors match on their HTTP status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// IsNotFound checks if an error indicates a missing document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRevisionConflict checks if an error indicates a failed If-Match
// revision check.
func IsRevisionConflict(err error) bool {
	return errors.Is(err, ErrRevisionConflict)
}

// IsConflict checks if an error indicates a key or constraint conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnauthorized checks if an error indicates missing or invalid
// credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// errorEnvelope is the server's JSON error body.
type errorEnvelope struct {
	IsError  bool   `json:"error"`
	Code     int    `json:"code"`
	ErrorNum int    `json:"errorNum"`
	Message  string `json:"errorMessage"`
}

// errorFromResponse builds an Error from a non-success response. The
// body is parsed best-effort; the HTTP status always wins over the
// envelope code.
func errorFromResponse(status int, body []byte) error {
	e := &Error{Status: status, Message: http.StatusText(status)}
	var envelope errorEnvelope
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil {
		e.ErrorNum = envelope.ErrorNum
		if envelope.Message != "" {
			e.Message = envelope.Message
		}
	}
	return e
}
