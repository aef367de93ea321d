// Package session persists the current login, an opaque token plus the
// last-known user profile, across process restarts. Two backends exist: a
// file on disk (the default) and Redis for shared environments.
//
// By convention only the auth manager writes the store: on login, on logout,
// and when a call comes back 401. Everything else treats it as read-only.
package session

import "github.com/iwacu250/listings-client/internal/core/domain"

// Store is the durable key/value persistence for the current session.
type Store interface {
	// Save writes the token and user together. Called only after a
	// successful login response.
	Save(token string, user *domain.User) error
	// Clear removes both values. Called on explicit logout and on any
	// observed 401.
	Clear() error
	// Token returns the stored token, or "" when no session exists.
	Token() string
	// CurrentUser returns the last-saved user, or nil. Token freshness is
	// not validated.
	CurrentUser() *domain.User
	// IsAuthenticated reports whether a token value is present. A stale or
	// server-revoked token still counts until the next failing request
	// clears it.
	IsAuthenticated() bool
}
