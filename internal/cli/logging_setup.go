package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/octofit/octofit/internal/config"
	"github.com/octofit/octofit/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
// When quiet is set and no log file is configured, records below warn are
// dropped so they do not draw over the interactive view.
func setupLogging(cmd *cobra.Command, debug, quiet bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		cfg := config.GetGlobalConfig()
		cfg.Logging.File = loggingCfg.File
		if err := config.EnsureLogDir(cfg); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if quiet && loggingCfg.File == "" && logging.ParseLevel(logCfg.Level) < zerolog.WarnLevel {
		logCfg.Level = zerolog.WarnLevel.String()
	}

	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
