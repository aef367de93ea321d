package domain

import "testing"

func TestUserHasRole(t *testing.T) {
	admin := &User{Roles: []Role{{Name: "ROLE_ADMIN"}}}
	if !admin.HasRole("ADMIN") {
		t.Fatalf("ROLE_ADMIN authority should satisfy ADMIN")
	}
	if !admin.HasRole("ROLE_ADMIN") {
		t.Fatalf("exact authority name should match")
	}
	if admin.HasRole("USER") {
		t.Fatalf("unexpected USER role")
	}

	plain := &User{Roles: []Role{{Name: "ADMIN"}}}
	if !plain.HasRole("ADMIN") {
		t.Fatalf("bare role name should match")
	}
}

func TestUserHasRoleNilSafe(t *testing.T) {
	var u *User
	if u.HasRole("ADMIN") {
		t.Fatalf("nil user must have no roles")
	}
	if u.IsAdmin() {
		t.Fatalf("nil user must not be admin")
	}
	if (&User{}).IsAdmin() {
		t.Fatalf("role-less user must not be admin")
	}
}

func TestUserIsAdmin(t *testing.T) {
	if !(&User{Roles: []Role{{Name: "ROLE_ADMIN"}}}).IsAdmin() {
		t.Fatalf("ROLE_ADMIN should grant admin")
	}
	if (&User{Roles: []Role{{Name: "ROLE_USER"}}}).IsAdmin() {
		t.Fatalf("ROLE_USER must not grant admin")
	}
}
