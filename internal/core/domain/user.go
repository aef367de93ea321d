package domain

const (
	RoleAdmin       = "ADMIN"
	roleSpringAdmin = "ROLE_ADMIN"
)

// Role is a named authority granted to a user. The backend emits both the
// bare form ("ADMIN") and the Spring-prefixed form ("ROLE_ADMIN") depending
// on the endpoint, so role checks accept either.
type Role struct {
	Name string `json:"name"`
}

// User is the cached profile returned alongside a login token. It is a
// best-effort snapshot: the token alone decides whether the session counts
// as authenticated.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Roles    []Role `json:"roles"`
}

// HasRole reports whether the user holds the named role, matching either the
// bare name or its ROLE_-prefixed variant.
func (u *User) HasRole(name string) bool {
	if u == nil {
		return false
	}
	prefixed := "ROLE_" + name
	for _, r := range u.Roles {
		if r.Name == name || r.Name == prefixed {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the ADMIN authority.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin) || u.HasRole(roleSpringAdmin)
}
