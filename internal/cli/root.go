package cli

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/octofit/octofit/internal/config"
	"github.com/octofit/octofit/internal/fitness"
	"github.com/octofit/octofit/internal/logging"
	"github.com/octofit/octofit/internal/tracing"
	"github.com/octofit/octofit/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationView marks commands that render resource views. Logging setup
// uses it to keep the interactive screen free of log noise.
const annotationView = "octofit.view"

// shutdownTimeout bounds the time spent flushing spans on exit.
const shutdownTimeout = 5 * time.Second

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	configPath string
	projectDir string
	workspace  string
	baseURL    string
	output     string
	locale     string
	plain      bool
	noColor    bool
	allPages   bool
	timeout    time.Duration
}

// session carries per-run state set up in PersistentPreRunE.
type session struct {
	version    string
	flags      rootFlags
	projectDir string
	logResult  *logging.LogPathResult
	tracer     *tracing.Provider

	closeOnce sync.Once
	closeErr  error
}

// NewRootCmd creates the root Cobra command for the octofit CLI.
// It wires up configuration, logging, tracing and the view and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	s := &session{version: ver}

	cmd := &cobra.Command{
		Use:     "octofit",
		Short:   "OctoFit Tracker CLI",
		Long:    "OctoFit: browse activities, workouts, users, teams and the leaderboard from an OctoFit backend",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return s.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return s.close(cmd.Context())
		},
	}

	f := cmd.PersistentFlags()
	f.BoolVar(&s.flags.debug, "debug", false, "enable debug logging")
	f.StringVar(&s.flags.configPath, "config", "", "config file (default ~/.octofit/config.yaml)")
	f.StringVar(&s.flags.projectDir, "project-dir", "", "project directory holding .octofit/config.yaml")
	f.StringVar(&s.flags.workspace, "workspace", "", "Codespace/workspace name used to build the API host")
	f.StringVar(&s.flags.baseURL, "base-url", "", "API base URL, overrides the derived workspace URL")
	f.StringVarP(&s.flags.output, "output", "o", "", "output format: table, json or ndjson")
	f.StringVar(&s.flags.locale, "locale", "", "locale used for dates and counts (e.g. en-US, de-DE)")
	f.BoolVar(&s.flags.plain, "plain", false, "plain text output without styling or interaction")
	f.BoolVar(&s.flags.noColor, "no-color", false, "disable colors")
	f.BoolVar(&s.flags.allPages, "all-pages", false, "follow pagination links up to api.max_pages")
	f.DurationVar(&s.flags.timeout, "timeout", 0, "per-request timeout (e.g. 10s)")

	for _, r := range fitness.All() {
		cmd.AddCommand(newViewCmd(s, r))
	}
	cmd.AddCommand(newAllCmd(s), newConfigCmd(s), newVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Show activities for the current Codespace
  octofit activities

  # Point at a specific workspace
  octofit --workspace my-codespace leaderboard

  # Use a local backend and print JSON
  octofit --base-url http://localhost:8000/api users -o json

  # Load every view at once
  octofit all --plain

  # Initialize configuration
  octofit config init

  # Set configuration values
  octofit config set api.workspace my-codespace`

// setup resolves configuration, applies flag overrides and starts logging and tracing.
func (s *session) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cwd, _ := os.Getwd()
	s.projectDir = config.ResolveProjectDir(ctx, s.flags.projectDir, cwd)

	cfg, err := config.NewWithProjectDir(ctx, s.flags.configPath, s.projectDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	s.applyFlags(cmd, cfg)
	config.SetGlobalConfig(cfg)

	cmd.SetContext(ctx)
	result := setupLogging(cmd, s.flags.debug, s.quietLogs(cmd, cfg))
	s.logResult = &result
	ctx = cmd.Context()

	provider, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		logger.Warn().Ctx(ctx).Err(err).Msg("tracing disabled")
		provider, _ = tracing.Setup(ctx, config.TracingConfig{})
	}
	s.tracer = provider
	return nil
}

// applyFlags overlays explicitly set flags onto cfg.
func (s *session) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("workspace") {
		cfg.API.Workspace = s.flags.workspace
	}
	if changed("base-url") {
		cfg.API.BaseURL = s.flags.baseURL
	}
	if changed("timeout") {
		cfg.API.Timeout = s.flags.timeout
	}
	if changed("all-pages") {
		cfg.API.FollowPages = s.flags.allPages
	}
	if changed("output") {
		cfg.Display.Output = s.flags.output
	}
	if changed("locale") {
		cfg.Display.Locale = s.flags.locale
	}
	if changed("plain") {
		cfg.Display.Plain = s.flags.plain
	}
	if changed("no-color") {
		cfg.Display.NoColor = s.flags.noColor
	}
}

// quietLogs reports whether the command is about to take over the terminal
// with the interactive view.
func (s *session) quietLogs(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Annotations[annotationView] == "" || s.flags.debug {
		return false
	}
	format, err := parseOutputFormat(cfg.Display.Output)
	if err != nil || format != outputTable {
		return false
	}
	return detectMode(cfg) == tui.OutputModeInteractive
}

// close flushes tracing and releases the log file. Safe to call more than once.
func (s *session) close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		if ctx == nil {
			ctx = context.Background()
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := s.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Ctx(ctx).Err(err).Msg("flushing traces")
		}
		s.closeErr = cleanupLogging(s.logResult)
	})
	return s.closeErr
}
