package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/octofit/octofit/internal/fitness"
	"github.com/octofit/octofit/internal/tui"
	"github.com/octofit/octofit/internal/view"
)

// newAllCmd creates the command that loads every view concurrently and
// prints them one after another.
func newAllCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show every view: activities, workouts, users, teams and leaderboard",
		Args:  cobra.NoArgs,
		Example: `  # Print all five views as text
  octofit all

  # One JSON object per view, one per line
  octofit all --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer func() { _ = s.close(cmd.Context()) }()
			return s.runAll(cmd)
		},
	}
}

// runAll fetches all resources with bounded concurrency. A failing view does
// not cancel the others; failures are reported together once every view has
// been rendered.
func (s *session) runAll(cmd *cobra.Command) error {
	ctx := cmd.Context()

	run, err := s.prepare()
	if err != nil {
		return err
	}

	resources := fitness.All()
	loaders := make([]view.Loader, len(resources))
	for i, r := range resources {
		loader, lerr := fitness.NewLoader(r, run.client, run.dates)
		if lerr != nil {
			return lerr
		}
		defer loader.Close()
		loaders[i] = loader
	}

	snaps := make([]view.Snapshot, len(loaders))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, loader := range loaders {
		g.Go(func() error {
			snaps[i] = loader.Reload(gCtx)
			return nil
		})
	}
	_ = g.Wait()
	if err = ctx.Err(); err != nil {
		return err
	}

	if err = renderAll(cmd.OutOrStdout(), snaps, run.format, run.mode); err != nil {
		return err
	}

	var failed []string
	for _, snap := range snaps {
		if snap.Kind == view.KindError {
			failed = append(failed, snap.Resource)
		}
	}
	logger.Debug().Ctx(ctx).Int("views", len(snaps)).Int("failed", len(failed)).Msg("all views loaded")
	if len(failed) > 0 {
		return &ViewError{Resources: failed}
	}
	return nil
}

// renderAll writes several views. Interactive terminals get the styled
// rendering since the interactive program shows a single view.
func renderAll(w io.Writer, snaps []view.Snapshot, format outputFormat, mode tui.OutputMode) error {
	switch format {
	case outputJSON:
		return view.RenderJSONAll(w, snaps)
	case outputNDJSON:
		return view.RenderNDJSONAll(w, snaps)
	case outputTable:
	}

	if mode == tui.OutputModeInteractive {
		mode = tui.OutputModeStyled
	}
	for i, snap := range snaps {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderSnapshot(w, snap, outputTable, mode); err != nil {
			return err
		}
	}
	return nil
}
