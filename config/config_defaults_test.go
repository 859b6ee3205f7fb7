package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.RateLimit = 20
	cfg.Search.DefaultPageSize = 500

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 21, cfg.HTTP.RateBurst)
	assert.Equal(t, defaultPoolSize, cfg.Pool.Size)
	assert.Equal(t, defaultAcquireTimeout, cfg.Pool.AcquireTimeout)
	assert.Equal(t, 15*time.Minute, cfg.SecretKey.AccessTTL)
	assert.Equal(t, DefaultMaxPageSize, cfg.Search.MaxPageSize)
	assert.Equal(t, DefaultPageSize, cfg.Search.DefaultPageSize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{}
	cfg.Pool = PoolConfig{Size: 8, MaxOverflow: 4, AcquireTimeout: time.Second}
	cfg.Search = SearchConfig{DefaultPageSize: 20, MaxPageSize: 50}

	cfg.applyDefaults()

	assert.Equal(t, 8, cfg.Pool.Size)
	assert.Equal(t, 4, cfg.Pool.MaxOverflow)
	assert.Equal(t, time.Second, cfg.Pool.AcquireTimeout)
	assert.Equal(t, 20, cfg.Search.DefaultPageSize)
	assert.Equal(t, 50, cfg.Search.MaxPageSize)
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("pool:\n  size: 3\n  acquireTimeout: 2s\nsearch:\n  defaultPageSize: 25\n  maxPageSize: 40\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))

	t.Chdir(dir)
	t.Setenv("POOL_SIZE", "9")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Pool.Size)
	assert.Equal(t, 2*time.Second, cfg.Pool.AcquireTimeout)
	assert.Equal(t, 40, cfg.Search.MaxPageSize)
	assert.Equal(t, 25, cfg.Search.DefaultPageSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
