package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "complit", cfg.Name)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "users.json", cfg.Data.UsersFile)
	assert.Equal(t, "progress.json", cfg.Data.ProgressFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATA_DIR", "/var/lib/complit")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/var/lib/complit", cfg.Data.Dir)
	assert.Equal(t, "warn", cfg.LogLevel)
}
