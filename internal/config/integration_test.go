package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig_SetAndReset(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, GetGlobalConfig())

	replacement := Default()
	replacement.API.Workspace = "from-cli"
	SetGlobalConfig(replacement)
	assert.Same(t, replacement, GetGlobalConfig())
	assert.Equal(t, "from-cli", GetGlobalConfig().API.Workspace)

	ResetGlobalConfigForTest()
	assert.NotSame(t, replacement, GetGlobalConfig())
}

func TestGetLoggingConfig_ReadsGlobal(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/octofit.log"
	SetGlobalConfig(cfg)

	lc := GetLoggingConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "/tmp/octofit.log", lc.File)

	lc.Level = "error"
	assert.Equal(t, "debug", GetGlobalConfig().Logging.Level, "returned value is a copy")
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	t.Setenv(EnvHome, "")
	t.Setenv("HOME", home)
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".octofit"), dir)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "octofit")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())
	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	assert.NoError(t, EnsureLogDir(nil))
	assert.NoError(t, EnsureLogDir(&Config{}))

	logFile := filepath.Join(t.TempDir(), "logs", "octofit.log")
	require.NoError(t, EnsureLogDir(&Config{Logging: LoggingConfig{File: logFile}}))

	_, err := os.Stat(filepath.Dir(logFile))
	assert.NoError(t, err)
}

func TestEnsureLogDir_Error(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureLogDir(&Config{Logging: LoggingConfig{File: filepath.Join(blocker, "sub", "octofit.log")}})
	assert.Error(t, err)
}
