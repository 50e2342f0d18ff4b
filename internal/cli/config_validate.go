package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/octofit/octofit/internal/config"
	"github.com/octofit/octofit/internal/record"
)

// newConfigValidateCmd creates the config validate command for validating configuration.
func newConfigValidateCmd(s *session) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validates the effective configuration: files, environment and flags combined.

This includes:
- API settings: workspace or base URL, port, timeout and paging limits
- Display output format
- Logging format`,
		Example: `  # Validate current configuration
  octofit config validate

  # Validate and show detailed information
  octofit config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, s, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, s *session, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, s, cfg)
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, s *session, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	if s.projectDir != "" {
		cmd.Printf("  Project directory: %s\n", s.projectDir)
	}
	cmd.Printf("  API base: %s\n", cfg.API.APIBase())
	cmd.Printf("  Timeout: %s\n", cfg.API.Timeout)
	if cfg.API.FollowPages {
		cmd.Printf("  Pagination: follow up to %d pages at %.1f pages/s\n", cfg.API.MaxPages, cfg.API.PageRate)
	} else {
		cmd.Println("  Pagination: first page only")
	}
	cmd.Printf("  Locale: %s\n", record.NewDateFormatter(cfg.Display.Locale).Tag())
	cmd.Printf("  Output format: %s\n", cfg.Display.Output)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	if cfg.Tracing.Endpoint != "" {
		cmd.Printf("  Tracing endpoint: %s (service %s)\n", cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	} else {
		cmd.Println("  Tracing: disabled")
	}
}
