package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/octofit/octofit/internal/config"
)

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		newConfigInitCmd(s), newConfigSetCmd(s), newConfigGetCmd(),
		newConfigListCmd(), newConfigValidateCmd(s),
	)
	return cmd
}

// newConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (an existing .octofit/ directory, --project-dir or
// OCTOFIT_PROJECT_DIR) it writes the project file unless --global is given.
func newConfigInitCmd(s *session) *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

When a project directory is in use, creates $PROJECT/.octofit/config.yaml
with a .gitignore for local log files. Use --global to write
~/.octofit/config.yaml instead.`,
		Example: `  # Create global configuration
  octofit config init

  # Create project configuration
  octofit config init --project-dir .

  # Overwrite an existing file
  octofit config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if s.projectDir != "" && !global {
				return initProjectConfig(cmd, s.projectDir, force)
			}
			return initGlobalConfig(cmd, s.flags.configPath, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")

	return cmd
}

// checkWritable fails when path exists and force is not set.
func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig creates projectDir/config.yaml and its .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore for local log files\n")
	}
	return nil
}

// initGlobalConfig creates the global config file, or the one named by --config.
func initGlobalConfig(cmd *cobra.Command, path string, force bool) error {
	cfg := config.Default()
	if path != "" {
		cfg.SetConfigPath(path)
	}
	if err := checkWritable(cfg.ConfigPath(), force); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())
	return nil
}
