package domain

import "errors"

// Sentinel errors for the request pipeline. Transport turns HTTP statuses
// into these; callers branch with errors.Is instead of inspecting codes.
var (
	// ErrUnauthorized maps 401 responses. Receiving it means the session
	// has already been torn down by the transport's listener.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden maps 403 responses.
	ErrForbidden = errors.New("access denied")

	// ErrNotFound maps 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation covers rejected input, both local validation failures
	// and 4xx responses carrying a server-side message.
	ErrValidation = errors.New("invalid input")

	// ErrServer maps 5xx responses. The response body is never surfaced.
	ErrServer = errors.New("server error, please try again later")

	// ErrNoResponse means the request never produced an HTTP response:
	// connection refused, DNS failure, timeout.
	ErrNoResponse = errors.New("no response from server")

	// ErrInvalidCredentials is the login-specific rejection.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnexpectedShape means a response decoded but did not match any
	// shape the client recognises.
	ErrUnexpectedShape = errors.New("unexpected response shape")

	// ErrFileTooLarge rejects an upload locally before any bytes are sent.
	ErrFileTooLarge = errors.New("file exceeds the size limit")
)
