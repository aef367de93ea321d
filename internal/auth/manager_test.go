package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/session"
	"github.com/iwacu250/listings-client/internal/transport"
)

func newTestStore(t *testing.T) *session.FileStore {
	t.Helper()
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func newTestManager(t *testing.T, register func(e *echo.Echo)) (*Manager, *session.FileStore, *transport.Client) {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	if register != nil {
		register(e)
	}
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	store := newTestStore(t)
	client := transport.New(srv.URL, time.Second, store, zerolog.Nop())
	return NewManager(client, store, "/login", zerolog.Nop()), store, client
}

func loginOK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"accessToken": "tok-123",
		"tokenType":   "Bearer",
		"username":    "alice",
		"roles":       []map[string]string{{"name": "ROLE_ADMIN"}},
	})
}

func TestManager_LoginSuccess(t *testing.T) {
	m, store, _ := newTestManager(t, func(e *echo.Echo) {
		e.POST("/auth/login", loginOK)
	})
	m.Init()

	user, err := m.Login(context.Background(), Credentials{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user %+v", user)
	}
	if !store.IsAuthenticated() {
		t.Fatalf("expected session persisted")
	}
	if store.Token() != "tok-123" {
		t.Fatalf("unexpected token %q", store.Token())
	}
	if snap := m.Snapshot(); snap.User == nil || snap.User.Username != "alice" {
		t.Fatalf("in-memory user not set: %+v", snap.User)
	}
	if !m.HasRole("ADMIN") || !m.IsAdmin() {
		t.Fatalf("expected ADMIN role from ROLE_ADMIN authority")
	}
}

func TestManager_LoginResponseMissingToken(t *testing.T) {
	m, store, _ := newTestManager(t, func(e *echo.Echo) {
		e.POST("/auth/login", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"username": "alice"})
		})
	})
	m.Init()

	_, err := m.Login(context.Background(), Credentials{Username: "alice", Password: "s3cret"})
	if !errors.Is(err, domain.ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape, got %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("store must not be mutated on token-less response")
	}
	if snap := m.Snapshot(); snap.User != nil {
		t.Fatalf("in-memory state must stay unchanged")
	}
}

func TestManager_LoginInvalidCredentials(t *testing.T) {
	m, store, _ := newTestManager(t, func(e *echo.Echo) {
		e.POST("/auth/login", func(c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
		})
	})
	m.Init()

	_, err := m.Login(context.Background(), Credentials{Username: "alice", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("failed login must not create a session")
	}
}

func TestManager_LoginEmptyCredentials(t *testing.T) {
	calls := 0
	m, _, _ := newTestManager(t, func(e *echo.Echo) {
		e.POST("/auth/login", func(c echo.Context) error {
			calls++
			return loginOK(c)
		})
	})
	m.Init()

	if _, err := m.Login(context.Background(), Credentials{Username: "  ", Password: ""}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("empty credentials must fail locally, but %d request(s) were sent", calls)
	}
}

func TestManager_LogoutAlwaysClearsLocally(t *testing.T) {
	m, store, _ := newTestManager(t, func(e *echo.Echo) {
		e.POST("/auth/logout", func(c echo.Context) error {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "boom"})
		})
	})
	if err := store.Save("tok", &domain.User{Username: "alice"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	m.Init()

	m.Logout(context.Background())

	if store.IsAuthenticated() {
		t.Fatalf("logout must clear the store even when the server call fails")
	}
	if store.CurrentUser() != nil {
		t.Fatalf("logout must clear the cached user")
	}
	if snap := m.Snapshot(); snap.User != nil {
		t.Fatalf("logout must reset the in-memory user")
	}
}

func TestManager_InitRestoresSessionWithoutNetwork(t *testing.T) {
	calls := 0
	m, store, _ := newTestManager(t, func(e *echo.Echo) {
		e.Any("/*", func(c echo.Context) error {
			calls++
			return c.NoContent(http.StatusOK)
		})
	})
	if err := store.Save("tok", &domain.User{Username: "alice"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	if snap := m.Snapshot(); !snap.Loading {
		t.Fatalf("expected loading before Init")
	}
	m.Init()

	snap := m.Snapshot()
	if snap.Loading {
		t.Fatalf("expected loading=false after Init")
	}
	if snap.User == nil || snap.User.Username != "alice" {
		t.Fatalf("session not restored: %+v", snap.User)
	}
	if calls != 0 {
		t.Fatalf("Init must never call the network, saw %d request(s)", calls)
	}
}

func TestManager_UnauthorizedClearsSessionAndNavigates(t *testing.T) {
	m, store, client := newTestManager(t, func(e *echo.Echo) {
		e.GET("/admin/settings", func(c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "expired"})
		})
	})
	if err := store.Save("stale-tok", &domain.User{Username: "alice"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	m.Init()
	m.SetRoute("/admin/plots")

	var gotTo, gotFrom string
	m.SetNavigateFunc(func(to, from string) { gotTo, gotFrom = to, from })

	if _, err := client.Get(context.Background(), "/admin/settings", nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if store.IsAuthenticated() {
		t.Fatalf("401 must clear the session store")
	}
	if snap := m.Snapshot(); snap.User != nil {
		t.Fatalf("401 must clear the in-memory user")
	}
	if gotTo != "/login" || gotFrom != "/admin/plots" {
		t.Fatalf("expected redirect to /login from /admin/plots, got %q from %q", gotTo, gotFrom)
	}
}

func TestManager_UnauthorizedOnLoginRouteDoesNotNavigate(t *testing.T) {
	m, _, client := newTestManager(t, func(e *echo.Echo) {
		e.POST("/auth/login", func(c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
		})
	})
	m.Init()
	m.SetRoute("/login")

	navigated := false
	m.SetNavigateFunc(func(to, from string) { navigated = true })

	_, _ = client.Post(context.Background(), "/auth/login", map[string]string{})
	if navigated {
		t.Fatalf("401 on the login route must not trigger a redirect")
	}
}

func TestManager_StaleLoginCompletionDiscardedAfterLogout(t *testing.T) {
	loginStarted := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	m, store, _ := newTestManager(t, func(e *echo.Echo) {
		e.POST("/auth/login", func(c echo.Context) error {
			once.Do(func() { close(loginStarted) })
			<-release
			return loginOK(c)
		})
		e.POST("/auth/logout", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
	})
	m.Init()

	type loginResult struct {
		user *domain.User
		err  error
	}
	done := make(chan loginResult, 1)
	go func() {
		user, err := m.Login(context.Background(), Credentials{Username: "alice", Password: "s3cret"})
		done <- loginResult{user: user, err: err}
	}()

	<-loginStarted
	m.Logout(context.Background())
	close(release)

	result := <-done
	if !errors.Is(result.err, ErrLoginSuperseded) {
		t.Fatalf("expected ErrLoginSuperseded, got %v", result.err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("stale login completion must not resurrect the cleared session")
	}
	if snap := m.Snapshot(); snap.User != nil {
		t.Fatalf("stale login completion must not restore the in-memory user")
	}
}
