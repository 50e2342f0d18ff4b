package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octofit/octofit/internal/config"
)

func TestEnsureGitignore_CreatesNestedDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "project", ".octofit")

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(data))
	assert.Contains(t, string(data), "*.log")
	assert.NotContains(t, string(data), "config.yaml\n*")
}

func TestEnsureGitignore_KeepsExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	custom := "# mine\nnode_modules/\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestEnsureGitignore_SecondCallIsNoop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureGitignore_ReadOnlyDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("file permission tests not reliable on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.Chmod(dir, 0o444))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	created, err := config.EnsureGitignore(dir)
	require.Error(t, err)
	assert.False(t, created)
}
