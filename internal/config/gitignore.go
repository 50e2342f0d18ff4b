package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// gitignoreContent keeps local log files out of version control while the
// shared project config.yaml stays tracked.
const gitignoreContent = `# OctoFit project-local data (auto-generated)
# config.yaml is shared; logs are not.
*.log
`

// GitignoreContent returns the .gitignore written into project .octofit/ directories.
func GitignoreContent() string {
	return gitignoreContent
}

// EnsureGitignore writes dir/.gitignore unless one already exists. It
// reports whether a file was created and never overwrites.
func EnsureGitignore(dir string) (bool, error) {
	gitignorePath := filepath.Join(dir, ".gitignore")

	_, err := os.Stat(gitignorePath)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking .gitignore at %s: %w", gitignorePath, err)
	}

	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, mkdirErr)
	}

	//nolint:gosec // .gitignore must be world-readable (0644).
	if writeErr := os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644); writeErr != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", gitignorePath, writeErr)
	}
	return true, nil
}
