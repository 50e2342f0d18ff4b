package view

import (
	"github.com/octofit/octofit/internal/record"
)

// Column is one display column of a resource table.
type Column[T any] struct {
	Title string
	// Width is the preferred width in the interactive table.
	Width int
	Value func(row T) string
}

// Field is one labelled line of a row's detail card.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DecodeFunc builds a typed row from the record at index.
type DecodeFunc[T any] func(rec record.Record, index int, dates record.DateFormatter) T

// Definition describes one resource view.
type Definition[T any] struct {
	// Resource is the path segment under the API base, e.g. "activities".
	Resource string
	// Title is the view heading.
	Title string
	// Noun names the records in messages, e.g. "activities".
	Noun string
	// EmptyText replaces the default "No <noun> found." banner.
	EmptyText string
	// TotalLabel replaces the default "Total <noun>" footer label.
	TotalLabel string

	Decode  DecodeFunc[T]
	Columns []Column[T]
	// Details lists the detail-card fields of a row, if any.
	Details func(row T) []Field
}

// EmptyMessage returns the banner shown when the view loaded zero rows.
func (d Definition[T]) EmptyMessage() string {
	if d.EmptyText != "" {
		return d.EmptyText
	}
	return "No " + d.Noun + " found."
}

// TotalPrefix returns the footer label without the count.
func (d Definition[T]) TotalPrefix() string {
	if d.TotalLabel != "" {
		return d.TotalLabel
	}
	return "Total " + d.Noun
}

// Headers returns the column titles.
func (d Definition[T]) Headers() []string {
	headers := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		headers[i] = c.Title
	}
	return headers
}

// Cells renders row into one string per column.
func (d Definition[T]) Cells(row T) []string {
	cells := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		cells[i] = c.Value(row)
	}
	return cells
}

// Widths returns the preferred column widths.
func (d Definition[T]) Widths() []int {
	widths := make([]int, len(d.Columns))
	for i, c := range d.Columns {
		widths[i] = c.Width
	}
	return widths
}

// DecodeAll decodes every record in order.
func (d Definition[T]) DecodeAll(records []record.Record, dates record.DateFormatter) []T {
	rows := make([]T, len(records))
	for i, rec := range records {
		rows[i] = d.Decode(rec, i, dates)
	}
	return rows
}
