package view

import (
	"github.com/octofit/octofit/internal/record"
)

// Snapshot is a rendered, resource-agnostic copy of a view's state.
type Snapshot struct {
	Resource string
	Title    string
	Noun     string
	Endpoint string

	Kind    Kind
	Message string
	Err     error

	Headers []string
	Widths  []int
	// Rows holds one rendered cell per column for each row.
	Rows [][]string
	// Items holds the typed rows for structured output.
	Items []any
	// Details holds the detail-card fields per row; nil when the resource
	// has no detail card.
	Details [][]Field

	EmptyText  string
	TotalLabel string
	Truncated  bool
	Pages      int

	dates record.DateFormatter
}

// Empty reports whether the view loaded zero rows.
func (s Snapshot) Empty() bool {
	return s.Kind == KindLoaded && len(s.Rows) == 0
}

// Footer returns the "Total <noun>: n" line, with the count grouped for
// the configured locale.
func (s Snapshot) Footer() string {
	return s.TotalLabel + ": " + s.dates.Count(len(s.Rows))
}

// ErrorTitle returns the heading of the error state.
func (s Snapshot) ErrorTitle() string {
	return "Error loading " + s.Noun
}

// LoadingText returns the loading indicator text.
func (s Snapshot) LoadingText() string {
	return "Loading " + s.Noun + "..."
}

// DetailFields returns the detail-card fields of row i, or nil.
func (s Snapshot) DetailFields(i int) []Field {
	if i < 0 || i >= len(s.Details) {
		return nil
	}
	return s.Details[i]
}
