package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.SessionMaxAge)
	assert.Equal(t, 10.0, cfg.RateLimit.PerSecond)
	assert.Empty(t, cfg.JWTKey)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
jwt_key: file-secret
redis:
  addr: redis:6379
  game_ttl: 48h
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "file-secret", cfg.JWTKey)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 48*time.Hour, cfg.Redis.GameTTL)
	assert.Equal(t, "debug", cfg.GinMode, "unset keys keep their defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RUMMIKUB_JWT_KEY", "env-secret")
	t.Setenv("RUMMIKUB_REDIS_ADDR", "other:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWTKey)
	assert.Equal(t, "other:6379", cfg.Redis.Addr)
}
