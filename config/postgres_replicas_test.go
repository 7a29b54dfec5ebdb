package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPostgresReplicas_MissingPostgresSection(t *testing.T) {
	cfg := &Config{}

	err := applyPostgresReplicas(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres section")
}

func TestApplyPostgresReplicas_FromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_0_PASSWORD", "secret")

	cfg := &Config{Postgres: &postgres.DBConn{}}

	require.NoError(t, applyPostgresReplicas(cfg))
	require.Len(t, cfg.Postgres.Replicas, 1)
	assert.Equal(t, "replica-0", cfg.Postgres.Replicas[0].Host)
	assert.Equal(t, "5433", cfg.Postgres.Replicas[0].Port)
	assert.Equal(t, "reader", cfg.Postgres.Replicas[0].UserName)
}

func TestApplyPostgresReplicas_NoEnvLeavesEmpty(t *testing.T) {
	cfg := &Config{Postgres: &postgres.DBConn{}}

	require.NoError(t, applyPostgresReplicas(cfg))
	assert.Empty(t, cfg.Postgres.Replicas)
}
