package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "MES.edu", cfg.Admin.Email)
	assert.Equal(t, "education", cfg.Admin.Password)
	assert.False(t, cfg.Features.DedupeLikes)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := []byte("server:\n  port: \"9090\"\n  mode: production\nstorage:\n  data_dir: /var/campus\nfeatures:\n  dedupe_likes: false\n")
	require.NoError(t, os.WriteFile(path, yml, 0o644))

	t.Setenv("STORAGE_DATA_DIR", "/tmp/campus")
	t.Setenv("FEATURE_DEDUPE_LIKES", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/campus", cfg.Storage.DataDir)
	assert.True(t, cfg.Features.DedupeLikes)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "forever")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("FEATURE_DEDUPE_LIKES", "maybe")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
	t.Run("empty data dir", func(t *testing.T) {
		t.Setenv("STORAGE_DATA_DIR", " ")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("CAMPUS_TEST_FLAG", "TRUE")
	assert.True(t, GetEnvAsBool("CAMPUS_TEST_FLAG", false))
	t.Setenv("CAMPUS_TEST_FLAG", "nope")
	assert.True(t, GetEnvAsBool("CAMPUS_TEST_FLAG", true))
	assert.Equal(t, "fallback", GetEnv("CAMPUS_TEST_UNSET", "fallback"))
}
