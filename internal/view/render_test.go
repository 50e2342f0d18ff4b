package view_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/view"
)

func loadedSnapshot(t *testing.T) view.Snapshot {
	t.Helper()
	fetcher := &fakeFetcher{records: []record.Record{{"name": "A", "kind": "x"}, {"name": "B"}}}
	return view.New(itemDefinition(), fetcher, record.NewDateFormatter("en-US")).Reload(context.Background())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, view.RenderJSON(&buf, loadedSnapshot(t)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "items", got["resource"])
	assert.Equal(t, "loaded", got["state"])
	assert.EqualValues(t, 2, got["count"])
	assert.NotContains(t, got, "error")

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, map[string]any{"name": "B", "kind": "N/A"}, items[1])
}

func TestRenderJSON_Error(t *testing.T) {
	snap := view.New(itemDefinition(), &fakeFetcher{err: errors.New("boom")}, record.NewDateFormatter("")).
		Reload(context.Background())

	var buf bytes.Buffer
	require.NoError(t, view.RenderJSON(&buf, snap))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["state"])
	assert.Equal(t, "boom", got["error"])
	assert.Equal(t, []any{}, got["items"])
}

func TestRenderJSONAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, view.RenderJSONAll(&buf, []view.Snapshot{loadedSnapshot(t), loadedSnapshot(t)}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestRenderNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, view.RenderNDJSON(&buf, loadedSnapshot(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"name":"A","kind":"x"}`, lines[0])
}

func TestRenderNDJSON_Error(t *testing.T) {
	snap := view.New(itemDefinition(), &fakeFetcher{err: errors.New("boom")}, record.NewDateFormatter("")).
		Reload(context.Background())

	var buf bytes.Buffer
	require.NoError(t, view.RenderNDJSON(&buf, snap))
	assert.Contains(t, buf.String(), `"state":"error"`)
}

func TestRenderNDJSONAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, view.RenderNDJSONAll(&buf, []view.Snapshot{loadedSnapshot(t), loadedSnapshot(t)}))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}
