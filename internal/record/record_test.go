package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octofit/octofit/internal/record"
)

// decode parses a JSON object the same way the API client does.
func decode(t *testing.T, s string) record.Record {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return record.FromValue(v)
}

func TestFromValue_NonObject(t *testing.T) {
	for _, v := range []any{nil, "text", 3.0, []any{1.0}, true} {
		r := record.FromValue(v)
		assert.NotNil(t, r)
		assert.Empty(t, r)
	}
}

func TestLookup_NullIsAbsent(t *testing.T) {
	r := decode(t, `{"a": null, "b": 0, "c": ""}`)

	assert.False(t, r.Has("a"))
	assert.False(t, r.Has("missing"))
	assert.True(t, r.Has("b"), "zero is present")
	assert.True(t, r.Has("c"), "empty string is present")
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", 0.0, false},
		{"number", 2.5, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"empty array", []any{}, true},
		{"empty object", map[string]any{}, true},
		{"json number zero", json.Number("0"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Truthy(tt.v))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Run", "Run"},
		{"whole float", 30.0, "30"},
		{"fraction", 12.5, "12.5"},
		{"negative", -4.0, "-4"},
		{"bool", false, "false"},
		{"int", 7, "7"},
		{"object", map[string]any{"b": 1.0, "a": "x"}, `{"a":"x","b":1}`},
		{"array", []any{1.0, "two"}, `[1,"two"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Format(tt.v))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"scalar", "ada", "ada", true},
		{"number", 3.0, "3", true},
		{"username wins", map[string]any{"username": "ada", "name": "Ada L."}, "ada", true},
		{"name fallback", map[string]any{"name": "Blue Team"}, "Blue Team", true},
		{"null username", map[string]any{"username": nil, "name": "Ada"}, "Ada", true},
		{"no name fields", map[string]any{"id": 1.0}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := record.DisplayName(tt.v)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectAndList(t *testing.T) {
	r := decode(t, `{"team": {"name": "Blue"}, "members": [1, 2], "flat": "x"}`)

	team, ok := r.Object("team")
	require.True(t, ok)
	assert.Equal(t, "Blue", team.String("name"))

	_, ok = r.Object("flat")
	assert.False(t, ok)

	members, ok := r.List("members")
	require.True(t, ok)
	assert.Len(t, members, 2)

	_, ok = r.List("team")
	assert.False(t, ok)
}
