package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/octofit/octofit/internal/api"
	"github.com/octofit/octofit/internal/config"
	"github.com/octofit/octofit/internal/fitness"
	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/tui"
	"github.com/octofit/octofit/internal/view"
)

// outputFormat is the value of --output / display.output.
type outputFormat string

const (
	outputTable  outputFormat = "table"
	outputJSON   outputFormat = "json"
	outputNDJSON outputFormat = "ndjson"
)

// ErrInvalidOutput is returned for an unsupported --output value.
var ErrInvalidOutput = errors.New("invalid output format")

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return outputTable, nil
	case outputTable, outputJSON, outputNDJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (valid: table, json, ndjson)", ErrInvalidOutput, s)
	}
}

// detectMode picks the table rendering mode from the terminal and display settings.
func detectMode(cfg *config.Config) tui.OutputMode {
	return tui.DetectOutputMode(false, cfg.Display.NoColor, cfg.Display.Plain)
}

// ViewError is returned when one or more views ended in the error state.
// The error details have already been rendered to the output.
type ViewError struct {
	Resources []string
}

func (e *ViewError) Error() string {
	return "failed to load " + strings.Join(e.Resources, ", ")
}

//nolint:gochecknoglobals // Static help text per resource.
var viewShort = map[fitness.Resource]string{
	fitness.Activities:  "List logged activities",
	fitness.Workouts:    "List suggested workouts",
	fitness.Users:       "List user profiles",
	fitness.Teams:       "List teams and their members",
	fitness.Leaderboard: "Show the leaderboard",
}

//nolint:gochecknoglobals // Command aliases per resource.
var viewAliases = map[fitness.Resource][]string{
	fitness.Activities:  {"activity"},
	fitness.Workouts:    {"workout"},
	fitness.Users:       {"user"},
	fitness.Teams:       {"team"},
	fitness.Leaderboard: {"lb"},
}

// newViewCmd creates the command that shows one resource view.
func newViewCmd(s *session, r fitness.Resource) *cobra.Command {
	return &cobra.Command{
		Use:         r.String(),
		Aliases:     viewAliases[r],
		Short:       viewShort[r],
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationView: "true"},
		Example: fmt.Sprintf(`  # Interactive table in a terminal, plain text when piped
  octofit %[1]s

  # Machine-readable output
  octofit %[1]s --output json`, r),
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer func() { _ = s.close(cmd.Context()) }()
			return s.runView(cmd, r)
		},
	}
}

// viewRun is the resolved configuration shared by view commands.
type viewRun struct {
	cfg    *config.Config
	format outputFormat
	mode   tui.OutputMode
	client *api.Client
	dates  record.DateFormatter
}

// prepare validates the API configuration and builds the client.
func (s *session) prepare() (*viewRun, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.API.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	format, err := parseOutputFormat(cfg.Display.Output)
	if err != nil {
		return nil, err
	}

	opts := []api.Option{api.WithUserAgent("octofit/" + s.version)}
	if s.tracer != nil {
		opts = append(opts, api.WithTracer(s.tracer.Tracer()))
	}

	return &viewRun{
		cfg:    cfg,
		format: format,
		mode:   detectMode(cfg),
		client: api.NewClient(cfg.API, opts...),
		dates:  record.NewDateFormatter(cfg.Display.Locale),
	}, nil
}

// runView fetches and renders one resource view.
func (s *session) runView(cmd *cobra.Command, r fitness.Resource) error {
	ctx := cmd.Context()

	run, err := s.prepare()
	if err != nil {
		return err
	}

	loader, err := fitness.NewLoader(r, run.client, run.dates)
	if err != nil {
		return err
	}
	defer loader.Close()

	logger.Debug().Ctx(ctx).
		Str("resource", r.String()).
		Str("endpoint", loader.Endpoint()).
		Str("mode", run.mode.String()).
		Str("output", string(run.format)).
		Msg("rendering view")

	var snap view.Snapshot
	if run.format == outputTable && run.mode == tui.OutputModeInteractive {
		snap, err = runInteractive(ctx, cmd, loader)
		if err != nil {
			return err
		}
	} else {
		snap = loader.Reload(ctx)
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = renderSnapshot(cmd.OutOrStdout(), snap, run.format, run.mode); err != nil {
			return err
		}
	}

	if snap.Kind == view.KindError {
		return &ViewError{Resources: []string{snap.Resource}}
	}
	return nil
}

// runInteractive runs the Bubble Tea program and returns the last settled
// snapshot. Ctrl+C inside the program is reported as context.Canceled, the
// same as an interrupt signal.
func runInteractive(ctx context.Context, cmd *cobra.Command, loader view.Loader) (view.Snapshot, error) {
	p := tea.NewProgram(
		tui.NewListModel(ctx, loader),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return loader.Snapshot(), ctx.Err()
		}
		return view.Snapshot{}, fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	if m, ok := final.(tui.ListModel); ok {
		if m.Interrupted() {
			return m.Snapshot(), context.Canceled
		}
		return m.Snapshot(), nil
	}
	return loader.Snapshot(), nil
}

// renderSnapshot writes one settled view in the requested format.
func renderSnapshot(w io.Writer, snap view.Snapshot, format outputFormat, mode tui.OutputMode) error {
	switch format {
	case outputJSON:
		return view.RenderJSON(w, snap)
	case outputNDJSON:
		return view.RenderNDJSON(w, snap)
	case outputTable:
	}
	if mode == tui.OutputModePlain {
		return view.RenderPlain(w, snap)
	}
	return tui.WriteStyled(w, snap, tui.TerminalWidth())
}
