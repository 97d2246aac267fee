package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ppin/config"
)

// clearEnv blanks every PPIN_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PPIN_DATA", "PPIN_NETWORK_BACKEND", "PPIN_NETWORK_SOURCE", "PPIN_FILE_VERSION",
		"PPIN_FIXTURE_PREFIX", "PPIN_FIXTURE_DIR", "PPIN_ORTHOLOG_DB", "PPIN_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, config.BackendMatrix, cfg.Backend)
	require.Equal(t, 89, cfg.FileVersion)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PPIN_DATA", "/srv/ppin")
	t.Setenv("PPIN_NETWORK_BACKEND", "list")
	t.Setenv("PPIN_FILE_VERSION", "95")
	t.Setenv("PPIN_ORTHOLOG_DB", "/srv/ppin/orthologs.db")
	t.Setenv("PPIN_LOG_LEVEL", "debug")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, "/srv/ppin", cfg.DataDir)
	require.Equal(t, config.BackendList, cfg.Backend)
	require.Equal(t, 95, cfg.FileVersion)
	require.Equal(t, "/srv/ppin/orthologs.db", cfg.OrthologDB)
	require.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestFromEnvErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("PPIN_NETWORK_BACKEND", "graph")
	_, err := config.FromEnv()
	require.ErrorIs(t, err, config.ErrUnknownBackend)

	clearEnv(t)
	t.Setenv("PPIN_FILE_VERSION", "latest")
	_, err = config.FromEnv()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("PPIN_LOG_LEVEL", "loud")
	_, err = config.FromEnv()
	require.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PPIN_FIXTURE_DIR=fixtures\n"), 0o644))
	// godotenv.Load never overrides variables that are already set, so the
	// blank value from clearEnv must be removed for the file to apply.
	require.NoError(t, os.Unsetenv("PPIN_FIXTURE_DIR"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, cfg.DotenvFound)
	require.Equal(t, "fixtures", cfg.FixtureDir)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.False(t, cfg.DotenvFound)
}
