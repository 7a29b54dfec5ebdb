package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens. UserID is the
// identifier of the authenticated account.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are self-contained and stateless: the server keeps no session table
// and cannot revoke an individual token before its expiry.
type TokenService interface {
	// Issue creates a signed token embedding the account identifier. A zero
	// ttl uses the configured default lifetime; a negative ttl produces an
	// already-expired token (useful in tests).
	Issue(userID uint, ttl time.Duration) (string, error)

	// Validate checks signature and expiry and returns the decoded claims.
	// Any malformed, tampered or expired token yields ErrUnauthenticated.
	Validate(tokenString string) (*Claims, error)

	// DefaultTTL returns the configured default token lifetime.
	DefaultTTL() time.Duration
}
