package auth

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/transport"
)

func newGuardManager(t *testing.T, user *domain.User) *Manager {
	t.Helper()
	store := newTestStore(t)
	if user != nil {
		if err := store.Save("tok", user); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	client := transport.New("http://127.0.0.1:0", time.Second, store, zerolog.Nop())
	return NewManager(client, store, "/login", zerolog.Nop())
}

func TestGuard_CheckingWhileLoading(t *testing.T) {
	m := newGuardManager(t, &domain.User{Username: "alice"})
	g := NewGuard(m)

	d := g.Evaluate("/admin/plots", domain.RoleAdmin)
	if d.State != StateChecking {
		t.Fatalf("expected checking before Init, got %v", d.State)
	}
	if d.Redirect != "" {
		t.Fatalf("checking must not redirect, got %q", d.Redirect)
	}
}

func TestGuard_DeniedWithoutSession(t *testing.T) {
	m := newGuardManager(t, nil)
	m.Init()
	g := NewGuard(m)

	d := g.Evaluate("/admin/plots")
	if d.State != StateDenied {
		t.Fatalf("expected denied, got %v", d.State)
	}
	if d.Redirect != "/login" {
		t.Fatalf("expected /login redirect, got %q", d.Redirect)
	}
	if d.From != "/admin/plots" {
		t.Fatalf("expected original location preserved, got %q", d.From)
	}
}

func TestGuard_DeniedWithoutRequiredRole(t *testing.T) {
	m := newGuardManager(t, &domain.User{
		Username: "bob",
		Roles:    []domain.Role{{Name: "ROLE_USER"}},
	})
	m.Init()
	g := NewGuard(m)

	d := g.Evaluate("/admin/plots", domain.RoleAdmin)
	if d.State != StateDenied {
		t.Fatalf("expected denied, got %v", d.State)
	}
	if d.Redirect != "/unauthorized" {
		t.Fatalf("expected /unauthorized redirect, got %q", d.Redirect)
	}
}

func TestGuard_AllowedWithRole(t *testing.T) {
	m := newGuardManager(t, &domain.User{
		Username: "alice",
		Roles:    []domain.Role{{Name: "ROLE_ADMIN"}},
	})
	m.Init()
	g := NewGuard(m)

	d := g.Evaluate("/admin/plots", domain.RoleAdmin)
	if d.State != StateAllowed {
		t.Fatalf("expected allowed, got %v", d.State)
	}
	if d.Redirect != "" {
		t.Fatalf("allowed must not redirect, got %q", d.Redirect)
	}
}

func TestGuard_AllowedWithoutRoleRestriction(t *testing.T) {
	m := newGuardManager(t, &domain.User{Username: "bob"})
	m.Init()
	g := NewGuard(m)

	if d := g.Evaluate("/account"); d.State != StateAllowed {
		t.Fatalf("expected allowed for role-less route, got %v", d.State)
	}
}

func TestGuard_ReEvaluatesAfterSessionTeardown(t *testing.T) {
	m := newGuardManager(t, &domain.User{
		Username: "alice",
		Roles:    []domain.Role{{Name: "ROLE_ADMIN"}},
	})
	m.Init()
	g := NewGuard(m)

	if d := g.Evaluate("/admin/plots", domain.RoleAdmin); d.State != StateAllowed {
		t.Fatalf("expected allowed before teardown, got %v", d.State)
	}

	m.handleUnauthorized()

	d := g.Evaluate("/admin/plots", domain.RoleAdmin)
	if d.State != StateDenied || d.Redirect != "/login" {
		t.Fatalf("expected denied with /login redirect after teardown, got %+v", d)
	}
}
