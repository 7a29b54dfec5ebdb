package auth

import (
	"testing"

	"catalog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(cost int) *bcryptHasher {
	cfg := &config.Config{
		Auth: config.AuthConfig{BcryptCost: cost},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(4)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := newTestHasher(4)

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Password123!", first))
	assert.True(t, hasher.Check("Password123!", second))
}

func TestBcryptHasher_CheckGarbageHash(t *testing.T) {
	hasher := newTestHasher(4)

	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	// Costs outside bcrypt's range fall back to the library default instead
	// of failing at hash time.
	hasher := newTestHasher(99)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.True(t, hasher.Check("Password123!", hash))
}
