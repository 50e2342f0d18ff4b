package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/octofit/octofit/internal/logging"
)

const projectDirName = ".octofit"

// ResolveProjectDir determines the project-local .octofit directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. OCTOFIT_PROJECT_DIR env var
//  3. walking up from startDir looking for an existing .octofit/config.yaml
//
// Returns the absolute path to the .octofit directory or "" if none is found.
// Does NOT create the directory.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	if startDir == "" {
		return ""
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, projectDirName)
		if _, statErr := os.Stat(filepath.Join(candidate, configFileName)); statErr == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithProjectDir loads the global config (or the file at path when set)
// and shallow-merges projectDir/config.yaml on top. Environment variables are
// re-applied after the merge so they keep precedence over both files.
func NewWithProjectDir(ctx context.Context, path, projectDir string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if projectDir == "" {
		return cfg, nil
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, statErr := os.Stat(overlayPath); statErr != nil {
		return cfg, nil
	}

	if mergeErr := ShallowMergeYAML(cfg, overlayPath); mergeErr != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("subsystem", "config").
			Str("operation", "merge_project_config").
			Err(mergeErr).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global config")
		return cfg, nil
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// toAbsProjectDir converts dir to an absolute path and appends ".octofit"
// unless it already ends with it.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("subsystem", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}

	return filepath.Join(abs, projectDirName)
}
