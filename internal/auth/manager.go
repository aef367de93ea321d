// Package auth owns the client-side authentication state: login, logout,
// role predicates, and the route guard over them. A Manager is explicitly
// constructed and passed down, never held in an ambient singleton, so tests can
// run several independent instances.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/metrics"
	"github.com/iwacu250/listings-client/internal/session"
	"github.com/iwacu250/listings-client/internal/transport"
)

// ErrLoginSuperseded is returned when a login response resolves after the
// session it belongs to was already torn down (logout or 401 while the
// request was in flight). The stale completion is discarded; it never
// resurrects a cleared session.
var ErrLoginSuperseded = errors.New("login superseded, session was cleared")

// Credentials are the login form inputs.
type Credentials struct {
	Username string
	Password string
}

// State is a point-in-time snapshot of the authentication state. Loading is
// true until Init has run.
type State struct {
	Loading bool
	User    *domain.User
}

// NavigateFunc receives forced navigations: to the login route on session
// expiry, carrying the route the user was on.
type NavigateFunc func(to, from string)

// Manager holds the in-memory authentication state and is the only writer
// of the session store. It registers itself as the transport's 401 listener,
// so a failed call anywhere de-authenticates exactly once, here.
type Manager struct {
	client     *transport.Client
	store      session.Store
	log        zerolog.Logger
	loginRoute string

	mu       sync.Mutex
	loading  bool
	user     *domain.User
	gen      uint64
	route    string
	navigate NavigateFunc
}

// NewManager wires a Manager to the transport client and session store.
// Call Init before the first Snapshot; until then the state reads as
// loading.
func NewManager(client *transport.Client, store session.Store, loginRoute string, log zerolog.Logger) *Manager {
	if loginRoute == "" {
		loginRoute = "/login"
	}
	m := &Manager{
		client:     client,
		store:      store,
		log:        log,
		loginRoute: loginRoute,
		loading:    true,
	}
	client.SetUnauthorizedFunc(m.handleUnauthorized)
	return m
}

// Init restores the session from the store. It never calls the network: a
// stored token is trusted until the first failing request. Runs once; later
// calls are no-ops.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loading {
		return
	}
	if m.store.IsAuthenticated() {
		if user := m.store.CurrentUser(); user != nil {
			m.user = user
			m.log.Debug().Str("username", user.Username).Msg("session restored")
		}
	}
	m.loading = false
}

// Snapshot returns the current authentication state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{Loading: m.loading, User: cloneUser(m.user)}
}

// SetNavigateFunc registers the listener for forced navigation on session
// expiry. Navigation is the listener's concern; the manager only decides
// when it must happen.
func (m *Manager) SetNavigateFunc(fn NavigateFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navigate = fn
}

// SetRoute records the route the user is currently on, used to suppress the
// login redirect when already there.
func (m *Manager) SetRoute(route string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.route = route
}

// loginResponse is the login endpoint's body: the token plus the user
// profile fields flattened alongside it.
type loginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ID          int64         `json:"id"`
	Username    string        `json:"username"`
	Email       string        `json:"email"`
	Roles       []domain.Role `json:"roles"`
}

// Login authenticates against the backend and, on success, persists the
// session and updates the in-memory user. On failure the prior state is
// left untouched and the error propagates to the caller for display.
//
// A generation check guards the completion: if a logout (or a 401 teardown)
// happened while the request was in flight, the response is discarded and
// ErrLoginSuperseded is returned.
func (m *Manager) Login(ctx context.Context, creds Credentials) (*domain.User, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidCredentials)
	}

	m.mu.Lock()
	startGen := m.gen
	m.mu.Unlock()

	raw, err := m.client.Post(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": creds.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, loginError(err)
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUnexpectedShape, err)
	}
	if resp.AccessToken == "" {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: login response missing access token", domain.ErrUnexpectedShape)
	}

	user := &domain.User{
		ID:       resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Roles:    resp.Roles,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != startGen {
		m.log.Warn().Str("username", username).Msg("discarding stale login completion")
		return nil, ErrLoginSuperseded
	}
	if err := m.store.Save(resp.AccessToken, user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	m.user = cloneUser(user)
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	m.log.Info().Str("username", user.Username).Msg("login successful")
	return cloneUser(user), nil
}

// Logout tears the session down. The server-side logout call is best
// effort: whatever its outcome, the store is cleared and the in-memory user
// reset, so logout always de-authenticates locally.
func (m *Manager) Logout(ctx context.Context) {
	if _, err := m.client.Post(ctx, "/auth/logout", nil); err != nil {
		m.log.Warn().Err(err).Msg("server-side logout failed, clearing local session anyway")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear session store")
	}
	m.user = nil
	metrics.SessionClearsTotal.WithLabelValues("logout").Inc()
	m.log.Info().Msg("logged out")
}

// HasRole reports whether the in-memory user holds the named role. Pure
// derivation, no network access.
func (m *Manager) HasRole(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user.HasRole(name)
}

// IsAdmin reports whether the in-memory user holds the ADMIN authority.
func (m *Manager) IsAdmin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user.IsAdmin()
}

// handleUnauthorized is the transport's 401 listener: clear the session,
// bump the generation so in-flight logins cannot resurrect it, and request
// navigation to the login route unless the user is already there.
func (m *Manager) handleUnauthorized() {
	m.mu.Lock()
	m.gen++
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear session store")
	}
	m.user = nil
	route := m.route
	navigate := m.navigate
	m.mu.Unlock()

	metrics.SessionClearsTotal.WithLabelValues("unauthorized").Inc()
	m.log.Warn().Str("route", route).Msg("session expired, cleared auth state")

	if navigate != nil && route != m.loginRoute {
		navigate(m.loginRoute, route)
	}
}

// loginError rewrites transport failures into login-appropriate messages;
// other errors pass through untouched.
func loginError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		return fmt.Errorf("%w: please check your username and password", domain.ErrInvalidCredentials)
	default:
		return err
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Roles != nil {
		clone.Roles = append([]domain.Role(nil), u.Roles...)
	}
	return &clone
}
