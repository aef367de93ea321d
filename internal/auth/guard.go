package auth

// GuardState is the route guard's decision state.
type GuardState int

const (
	// StateChecking means the auth state is still loading; render a
	// neutral indicator and do not redirect.
	StateChecking GuardState = iota
	// StateDenied means access is refused; follow Decision.Redirect.
	StateDenied
	// StateAllowed means the protected content renders unchanged.
	StateAllowed
)

func (s GuardState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateDenied:
		return "denied"
	case StateAllowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// Decision is the outcome of a guard evaluation. When denied, Redirect
// names the target route and From carries the originally requested location
// so the login flow can return there afterwards.
type Decision struct {
	State    GuardState
	Redirect string
	From     string
}

// Guard gates access to admin-only views. It holds no state of its own:
// every Evaluate consults the manager afresh, so a session invalidated
// mid-visit flips the next evaluation to denied.
type Guard struct {
	auth              *Manager
	loginRoute        string
	unauthorizedRoute string
}

// NewGuard returns a Guard over the manager, redirecting to /login for
// missing sessions and /unauthorized for missing roles.
func NewGuard(m *Manager) *Guard {
	return &Guard{
		auth:              m,
		loginRoute:        m.loginRoute,
		unauthorizedRoute: "/unauthorized",
	}
}

// Evaluate decides whether the route at from, optionally restricted to the
// given roles, may render.
func (g *Guard) Evaluate(from string, roles ...string) Decision {
	snap := g.auth.Snapshot()

	if snap.Loading {
		return Decision{State: StateChecking}
	}

	if snap.User == nil {
		return Decision{State: StateDenied, Redirect: g.loginRoute, From: from}
	}

	if len(roles) > 0 {
		allowed := false
		for _, role := range roles {
			if snap.User.HasRole(role) {
				allowed = true
				break
			}
		}
		if !allowed {
			return Decision{State: StateDenied, Redirect: g.unauthorizedRoute, From: from}
		}
	}

	return Decision{State: StateAllowed, From: from}
}
