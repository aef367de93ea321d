package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iwacu250/listings-client/internal/core/domain"
)

// APIError is the uniform error surfaced for every failed backend call: a
// user-facing message plus the original HTTP status (0 when no response was
// received). It unwraps to one of the domain sentinel errors so callers can
// branch with errors.Is.
type APIError struct {
	Status  int
	Message string
	err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.err }

// serverMessage is the error envelope the backend renders on failures. Both
// "message" and "error" keys have been observed.
type serverMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// resolveError maps an HTTP failure status and body to an APIError with a
// deterministic sentinel and a user-facing message. Server-provided messages
// are passed through verbatim for validation failures; 5xx bodies are never
// surfaced.
func resolveError(status int, body []byte) *APIError {
	msg := extractMessage(body)

	switch {
	case status == http.StatusUnauthorized:
		if msg == "" {
			msg = "unauthorized, please log in again"
		}
		return &APIError{Status: status, Message: msg, err: domain.ErrUnauthorized}
	case status == http.StatusForbidden:
		if msg == "" {
			msg = "you do not have permission to view this content"
		}
		return &APIError{Status: status, Message: msg, err: domain.ErrForbidden}
	case status == http.StatusNotFound:
		if msg == "" {
			msg = "resource not found"
		}
		return &APIError{Status: status, Message: msg, err: domain.ErrNotFound}
	case status >= 500:
		return &APIError{Status: status, Message: domain.ErrServer.Error(), err: domain.ErrServer}
	default:
		if msg == "" {
			msg = "invalid request parameters"
		}
		return &APIError{Status: status, Message: msg, err: domain.ErrValidation}
	}
}

// noResponseError is returned when the request never produced an HTTP
// response (connection failure or timeout). No retry is attempted.
func noResponseError() *APIError {
	return &APIError{Status: 0, Message: domain.ErrNoResponse.Error(), err: domain.ErrNoResponse}
}

func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var env serverMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}

// outcomeOf converts an error (or nil) to a metrics outcome label.
func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var ae *APIError
	if !errors.As(err, &ae) {
		return "no_response"
	}
	switch {
	case ae.Status == http.StatusUnauthorized:
		return "unauthorized"
	case ae.Status == http.StatusForbidden:
		return "forbidden"
	case ae.Status == http.StatusNotFound:
		return "not_found"
	case ae.Status >= 500:
		return "server_error"
	case ae.Status == 0:
		return "no_response"
	default:
		return "validation"
	}
}
