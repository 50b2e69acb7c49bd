package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "data/portfolio.db", cfg.Storage.SQLitePath)
	assert.False(t, cfg.Storage.AtomicProfileWrites)
	assert.Equal(t, TransportNone, cfg.Reminders.Transport)
	assert.Equal(t, 9, cfg.Reminders.Hour)
	assert.Equal(t, UploaderNone, cfg.Uploader.Provider)
	assert.Equal(t, "8080", cfg.App.Port)
}

func TestLoadConfig_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
storage:
  driver: redis
  atomic_profile_writes: true
redis:
  addr: localhost:6379
app:
  port: "9090"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("APP_PORT", "7070")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.AtomicProfileWrites)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "7070", cfg.App.Port)
}
