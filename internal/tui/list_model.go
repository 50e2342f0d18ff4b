// Package tui renders OctoFit views in the terminal: an interactive Bubble
// Tea table, or a one-shot Lip Gloss table for non-interactive output.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/octofit/octofit/internal/logging"
	"github.com/octofit/octofit/internal/view"
)

// ViewState is the screen the list model is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the fetch runs.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the table, or the empty banner.
	ViewStateList
	// ViewStateDetail shows the selected row's detail card.
	ViewStateDetail
	// ViewStateError shows the error banner.
	ViewStateError
	// ViewStateQuitting is set once the program is exiting.
	ViewStateQuitting
)

// viewLoadedMsg carries a settled snapshot for fetch number seq.
type viewLoadedMsg struct {
	seq  uint64
	snap view.Snapshot
}

// ListModel is the Bubble Tea model for one resource view.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ListModel struct {
	state  ViewState
	loader view.Loader
	ctx    context.Context
	cancel context.CancelFunc
	seq    uint64

	interrupted bool

	snap    view.Snapshot
	table   table.Model
	loading *LoadingState

	width  int
	height int
}

// NewListModel creates a model that fetches through loader when started.
// The fetch is cancelled when the user quits.
func NewListModel(ctx context.Context, loader view.Loader) ListModel {
	ctx, cancel := context.WithCancel(ctx)
	snap := loader.Snapshot()
	return ListModel{
		state:   ViewStateLoading,
		loader:  loader,
		ctx:     ctx,
		cancel:  cancel,
		seq:     1,
		snap:    snap,
		loading: NewLoadingState(snap.LoadingText()),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init starts the spinner and the fetch.
func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd())
}

func (m ListModel) fetchCmd() tea.Cmd {
	ctx, loader, seq := m.ctx, m.loader, m.seq
	return func() tea.Msg {
		return viewLoadedMsg{seq: seq, snap: loader.Reload(ctx)}
	}
}

// Snapshot returns the last settled snapshot.
func (m ListModel) Snapshot() view.Snapshot {
	return m.snap
}

// Interrupted reports whether the user left with ctrl+c rather than q.
func (m ListModel) Interrupted() bool {
	return m.interrupted
}

// State returns the current screen.
func (m ListModel) State() ViewState {
	return m.state
}

// Update handles messages (Bubble Tea interface).
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == ViewStateList || m.state == ViewStateDetail {
			m.table = m.buildTable()
		}
		return m, nil
	case viewLoadedMsg:
		return m.handleLoaded(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit:
			return m.quit()
		case keyCtrlC:
			m.interrupted = true
			return m.quit()
		}
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loading.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError, ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m ListModel) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	m.loader.Close()
	m.state = ViewStateQuitting
	return m, tea.Quit
}

func (m ListModel) handleLoaded(msg viewLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || m.state == ViewStateQuitting {
		logging.FromContext(m.ctx).Debug().
			Uint64("seq", msg.seq).
			Str("subsystem", "tui").
			Msg("ignoring stale view result")
		return m, nil
	}
	m.snap = msg.snap
	switch msg.snap.Kind {
	case view.KindError:
		m.state = ViewStateError
	case view.KindLoaded:
		m.state = ViewStateList
		m.table = m.buildTable()
	case view.KindLoading:
	}
	return m, nil
}

func (m ListModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyEnter {
		if len(m.snap.Rows) > 0 && m.snap.Details != nil {
			m.state = ViewStateDetail
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ListModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, keyBackspace, keyEnter:
			m.state = ViewStateList
		}
	}
	return m, nil
}

func (m ListModel) buildTable() table.Model {
	columns := make([]table.Column, len(m.snap.Headers))
	for i, h := range m.snap.Headers {
		width := lipgloss.Width(h)
		if i < len(m.snap.Widths) && m.snap.Widths[i] > width {
			width = m.snap.Widths[i]
		}
		columns[i] = table.Column{Title: h, Width: width}
	}
	rows := make([]table.Row, len(m.snap.Rows))
	for i, r := range m.snap.Rows {
		rows[i] = table.Row(r)
	}

	height := m.height - chromeHeight
	if height < minHeight {
		height = minHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	if m.table.Cursor() > 0 && m.table.Cursor() < len(rows) {
		t.SetCursor(m.table.Cursor())
	}
	return t
}

// View renders the current screen (Bubble Tea interface).
func (m ListModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateError:
		return RenderError(m.snap, m.width) + "\n" + SubtleStyle.Render("q quit") + "\n"
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m ListModel) renderListView() string {
	sections := []string{
		HeaderStyle.Render(m.snap.Title),
		SubtleStyle.Render("API Endpoint: " + m.snap.Endpoint),
		"",
	}
	if m.snap.Empty() {
		sections = append(sections, InfoStyle.Render(m.snap.EmptyText))
	} else {
		sections = append(sections, m.table.View())
	}
	sections = append(sections, "", SubtleStyle.Render(m.snap.Footer()))
	if m.snap.Truncated {
		sections = append(sections, SubtleStyle.Render(truncatedNotice(m.snap.Pages)))
	}

	help := "↑/↓ navigate • q quit"
	if m.snap.Details != nil && !m.snap.Empty() {
		help = "↑/↓ navigate • enter details • q quit"
	}
	sections = append(sections, SubtleStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ListModel) renderDetailView() string {
	fields := m.snap.DetailFields(m.table.Cursor())
	return RenderDetail(m.snap.Title, fields, m.width) + "\n" + SubtleStyle.Render("esc back • q quit")
}

// RenderDetail renders a labelled detail card.
func RenderDetail(title string, fields []view.Field, width int) string {
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(strings.ToUpper(title) + " DETAIL"))
	content.WriteString("\n\n")
	for _, f := range fields {
		label := f.Label + ":" + strings.Repeat(" ", labelWidth-lipgloss.Width(f.Label)+1)
		content.WriteString(LabelStyle.Render(label))
		content.WriteString(ValueStyle.Render(f.Value))
		content.WriteString("\n")
	}
	return BoxStyle.Width(max(width-borderPadding, 0)).Render(strings.TrimRight(content.String(), "\n"))
}

// RenderError renders the error banner with the attempted endpoint.
func RenderError(snap view.Snapshot, width int) string {
	content := fmt.Sprintf("%s\n%s\n%s",
		CriticalStyle.Render(snap.ErrorTitle()),
		snap.Message,
		LabelStyle.Render("API Endpoint: ")+snap.Endpoint,
	)
	return ErrorBoxStyle.Width(max(width-borderPadding, 0)).Render(content)
}
