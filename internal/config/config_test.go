package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/api/internal/seed"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "HTTP_ADDR", "DB_TIMEOUT", "REQUEST_TIMEOUT", "SEED_GUARD")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.UsesDatabase())
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, seed.GuardPerCollection, cfg.Guard())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/showcase")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DB_TIMEOUT", "250ms")
	t.Setenv("SEED_GUARD", "tools")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.DBTimeout)
	assert.Equal(t, seed.GuardTools, cfg.Guard())
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("DB_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestLoadRejectsUnknownGuard(t *testing.T) {
	t.Setenv("SEED_GUARD", "sectors")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_GUARD")
}

func TestValidateRejectsNonPositiveTimeouts(t *testing.T) {
	cfg := Config{HTTPAddr: ":1", DBTimeout: 0, RequestTimeout: time.Second}
	assert.Error(t, cfg.Validate())
	cfg = Config{HTTPAddr: ":1", DBTimeout: time.Second, RequestTimeout: -time.Second}
	assert.Error(t, cfg.Validate())
}
