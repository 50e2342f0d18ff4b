package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/octofit/octofit/internal/config"
)

// newConfigSetCmd creates the config set command. It edits the file on disk,
// so environment and flag overrides are never written back.
func newConfigSetCmd(s *session) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  # Point the CLI at a Codespace
  octofit config set api.workspace my-codespace

  # Follow pagination links by default
  octofit config set api.follow_pages true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := s.flags.configPath
			if s.projectDir != "" && !global {
				path = filepath.Join(s.projectDir, "config.yaml")
			}

			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Debug().Ctx(cmd.Context()).
				Str("key", args[0]).
				Str("config_path", cfg.ConfigPath()).
				Msg("configuration value set")
			cmd.Printf("Set %s = %s in %s\n", args[0], args[1], cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")
	return cmd
}

// newConfigGetCmd creates the config get command. It prints the effective
// value after files, environment and flags are applied.
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print a configuration value",
		Example: `  octofit config get api.workspace`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

// newConfigListCmd creates the config list command.
func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all effective configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := config.GetGlobalConfig().List()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, key := range config.Keys() {
				if _, err = fmt.Fprintf(w, "%s = %s\n", key, values[key]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
