package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion_Override(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "v9.9.9"
	assert.Equal(t, "v9.9.9", GetVersion())
}

func TestGetVersion_Fallback(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = ""
	assert.NotEmpty(t, GetVersion())
}

func TestGetBuildMetadata(t *testing.T) {
	origCommit, origDate := gitCommit, buildDate
	t.Cleanup(func() { gitCommit, buildDate = origCommit, origDate })

	gitCommit, buildDate = "", ""
	assert.NotEmpty(t, GetGitCommit())
	assert.Equal(t, "unknown", GetBuildDate())

	gitCommit, buildDate = "abc123", "2026-01-02"
	assert.Equal(t, "abc123", GetGitCommit())
	assert.Equal(t, "2026-01-02", GetBuildDate())
}
