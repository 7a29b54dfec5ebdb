// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with a single symmetric secret (HS256) and carry the
// account identifier plus an absolute expiry. Verification is stateless:
// there is no revocation list, a compromised token stays valid until expiry.
type jwtService struct {
	secret     string
	defaultTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.Auth.SecretKey,
		defaultTTL: cfg.Auth.TokenTTL(),
	}, nil
}

// Issue creates a signed token embedding the account identifier. A zero ttl
// falls back to the configured default; negative values are kept as-is so
// callers can mint already-expired tokens.
func (s *jwtService) Issue(userID uint, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string. Every failure
// mode (garbage input, tampered signature, wrong algorithm, past expiry)
// collapses to ErrUnauthenticated; callers never see parser internals.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token verification failed")
	}

	return claims, nil
}

// DefaultTTL returns the configured default token lifetime.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.defaultTTL
}
