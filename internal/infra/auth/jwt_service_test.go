package auth

import (
	"testing"
	"time"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string, ttlMinutes int) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SecretKey:       secret,
			TokenTTLMinutes: ttlMinutes,
		},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("", 120))

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret-key", 120))
	require.NoError(t, err)

	token, err := svc.Issue(7, 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret-key", 120))
	require.NoError(t, err)

	token, err := svc.Issue(7, -time.Minute)
	require.NoError(t, err)

	claims, err := svc.Validate(token)

	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("issuer-secret", 120))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("other-secret", 120))
	require.NoError(t, err)

	token, err := issuer.Issue(7, 0)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)

	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret-key", 120))
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		claims, err := svc.Validate(raw)

		assert.Error(t, err)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	}
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret-key", 30))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.DefaultTTL())

	// Zero in config falls back to the built-in default.
	svc, err = NewJWTService(newTestTokenConfig("test-secret-key", 0))
	require.NoError(t, err)
	assert.Equal(t, 120*time.Minute, svc.DefaultTTL())
}
