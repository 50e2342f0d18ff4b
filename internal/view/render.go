package view

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// tabwriterPadding is the minimum padding between plain table columns.
const tabwriterPadding = 2

// RenderPlain writes the snapshot as an unstyled, tab-aligned table.
func RenderPlain(w io.Writer, s Snapshot) error {
	switch s.Kind {
	case KindLoading:
		_, err := fmt.Fprintln(w, s.LoadingText())
		return err
	case KindError:
		_, err := fmt.Fprintf(w, "%s\n%s\nAPI Endpoint: %s\n", s.ErrorTitle(), s.Message, s.Endpoint)
		return err
	case KindLoaded:
	default:
		return fmt.Errorf("unknown view state %d", s.Kind)
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", s.Title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}

	if s.Empty() {
		if _, err := fmt.Fprintln(w, s.EmptyText); err != nil {
			return fmt.Errorf("writing empty banner: %w", err)
		}
	} else if err := renderPlainTable(w, s); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", s.Footer()); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	if s.Truncated {
		if _, err := fmt.Fprintf(w, "More results available beyond %d pages.\n", s.Pages); err != nil {
			return fmt.Errorf("writing footer: %w", err)
		}
	}
	return nil
}

func renderPlainTable(w io.Writer, s Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(s.Headers, "\t")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	sep := make([]string, len(s.Headers))
	for i, h := range s.Headers {
		sep[i] = strings.Repeat("-", max(len([]rune(h)), 1))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(sep, "\t")); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, row := range s.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(sanitizeCells(row), "\t")); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

// sanitizeCells keeps cell text on one table line.
func sanitizeCells(cells []string) []string {
	out := make([]string, len(cells))
	r := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	for i, c := range cells {
		out[i] = r.Replace(c)
	}
	return out
}

// jsonView is the structured form of one view.
type jsonView struct {
	Resource  string `json:"resource"`
	Endpoint  string `json:"endpoint"`
	State     string `json:"state"`
	Error     string `json:"error,omitempty"`
	Count     int    `json:"count"`
	Truncated bool   `json:"truncated,omitempty"`
	Items     []any  `json:"items"`
}

func toJSONView(s Snapshot) jsonView {
	items := s.Items
	if items == nil {
		items = []any{}
	}
	return jsonView{
		Resource:  s.Resource,
		Endpoint:  s.Endpoint,
		State:     s.Kind.String(),
		Error:     s.Message,
		Count:     len(s.Items),
		Truncated: s.Truncated,
		Items:     items,
	}
}

// RenderJSON writes one view as an indented JSON object.
func RenderJSON(w io.Writer, s Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(toJSONView(s)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderJSONAll writes several views as an indented JSON array.
func RenderJSONAll(w io.Writer, snaps []Snapshot) error {
	views := make([]jsonView, len(snaps))
	for i, s := range snaps {
		views[i] = toJSONView(s)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(views); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderNDJSON writes one line per row. An error state is written as a
// single view object so the failure is not silently lost.
func RenderNDJSON(w io.Writer, s Snapshot) error {
	if s.Kind != KindLoaded {
		return writeJSONLine(w, toJSONView(s))
	}
	for _, item := range s.Items {
		if err := writeJSONLine(w, item); err != nil {
			return err
		}
	}
	return nil
}

// RenderNDJSONAll writes one view object per line.
func RenderNDJSONAll(w io.Writer, snaps []Snapshot) error {
	for _, s := range snaps {
		if err := writeJSONLine(w, toJSONView(s)); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling row: %w", err)
	}
	if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("writing NDJSON line: %w", err)
	}
	return nil
}
