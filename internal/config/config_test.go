package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, ".ekan/ekan.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(
		"database_path = \"/tmp/notes.db\"\nlog_level = \"debug\"\n",
	), 0o644))

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/notes.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(
		"log_level = \"warn\"\n",
	), 0o644))

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ".ekan/ekan.db", cfg.DatabasePath, "absent attributes keep their defaults")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EKAN_DATABASE_PATH", "/var/lib/ekan/ekan.db")
	t.Setenv("EKAN_LOG_LEVEL", "trace")

	cfg, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/ekan/ekan.db", cfg.DatabasePath)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(
		"database_path = \"/tmp/file.db\"\n",
	), 0o644))

	t.Setenv("EKAN_DATABASE_PATH", "/tmp/env.db")

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.DatabasePath, "environment wins over the file")
}
