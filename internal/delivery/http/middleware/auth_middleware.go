package middleware

import (
	"strings"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// KeyBearerToken is the echo context key under which the raw bearer token is
// stored for protected handlers.
const KeyBearerToken = "bearerToken"

// bearerPrefix is matched case-insensitively; HTTP auth schemes are
// case-insensitive per RFC 7235.
const bearerPrefix = "Bearer "

// AuthMiddleware extracts the bearer credential from the Authorization
// header. It deliberately does NOT resolve the identity: protected handlers
// call the identity resolver explicitly, so the authorization gate is visible
// at the top of each operation instead of hidden in transport plumbing.
type AuthMiddleware struct{}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// ExtractBearer pulls the raw token out of "Authorization: Bearer <token>"
// and stores it on the context. A missing or malformed header fails the
// request with 401 before the handler runs.
func (m *AuthMiddleware) ExtractBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header must be a Bearer token")
		}

		tokenString := authHeader[len(bearerPrefix):]

		c.Set(KeyBearerToken, tokenString)

		return next(c)
	}
}

// BearerToken returns the raw token stored by ExtractBearer, or "" when the
// route was not behind the middleware.
func BearerToken(c echo.Context) string {
	token, _ := c.Get(KeyBearerToken).(string)

	return token
}
