package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the best-effort view of a stored JWT, decoded without
// signature verification. It exists purely for display (whoami output); the
// authentication predicate never consults it.
type TokenClaims struct {
	Username  string
	ExpiresAt time.Time
}

// PeekClaims decodes the token's claims without verifying the signature.
// Malformed tokens return ok=false; they are still considered a session
// until the server rejects them.
func PeekClaims(token string) (TokenClaims, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, false
	}

	out := TokenClaims{}
	if sub, _ := claims["username"].(string); sub != "" {
		out.Username = sub
	} else if sub, err := claims.GetSubject(); err == nil {
		out.Username = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, true
}
