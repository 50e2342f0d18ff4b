package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/octofit/octofit/internal/view"
)

// RenderStyled returns a one-shot styled rendering of snap for
// non-interactive terminals.
func RenderStyled(snap view.Snapshot, width int) string {
	switch snap.Kind {
	case view.KindLoading:
		return InfoStyle.Render(snap.LoadingText())
	case view.KindError:
		return RenderError(snap, width)
	case view.KindLoaded:
	}

	sections := []string{
		HeaderStyle.Render(snap.Title),
		SubtleStyle.Render("API Endpoint: " + snap.Endpoint),
		"",
	}
	if snap.Empty() {
		sections = append(sections, InfoStyle.Render(snap.EmptyText))
	} else {
		sections = append(sections, styledTable(snap, width).Render())
	}
	sections = append(sections, "", SubtleStyle.Render(snap.Footer()))
	if snap.Truncated {
		sections = append(sections, SubtleStyle.Render(truncatedNotice(snap.Pages)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func styledTable(snap view.Snapshot, width int) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))).
		Headers(snap.Headers...).
		Rows(snap.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableCellStyle.Bold(true).Foreground(lipgloss.Color(ColorHeader))
			}
			if row%2 == 1 {
				return TableCellStyle.Foreground(lipgloss.Color(ColorSubtle))
			}
			return TableCellStyle
		})
	if width > 0 && lipgloss.Width(t.Render()) > width {
		t = t.Width(width)
	}
	return t
}

// WriteStyled writes RenderStyled output followed by a newline.
func WriteStyled(w io.Writer, snap view.Snapshot, width int) error {
	_, err := fmt.Fprintln(w, RenderStyled(snap, width))
	return err
}

func truncatedNotice(pages int) string {
	return fmt.Sprintf("More results available beyond %d pages.", pages)
}
