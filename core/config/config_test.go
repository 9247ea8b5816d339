package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "grocery", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, "memory", cfg.Persistence.Backend)
	assert.Equal(t, 5, cfg.Persistence.TimeoutSeconds)
	assert.Equal(t, 900, cfg.Persistence.CacheTTLSeconds)
	assert.Equal(t, "gemini-2.5-flash", cfg.Predictor.Model)
	assert.Empty(t, cfg.Predictor.APIKey)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PERSISTENCE_BACKEND", "object")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "object", cfg.Persistence.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PREDICTOR_MODEL=gemini-test\nLOG_FORMAT=console\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PREDICTOR_MODEL")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "gemini-test", cfg.Predictor.Model)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestBindValues(t *testing.T) {
	v := viper.New()
	bindValues(v, &Config{}, "")

	assert.True(t, v.IsSet("server.port"))
	assert.True(t, v.IsSet("persistence.cache_ttl_seconds"))
	assert.Equal(t, "memory", v.GetString("persistence.backend"))
	assert.Equal(t, "", v.GetString("server.api_key"))
}
