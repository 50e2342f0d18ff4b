package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/octofit/octofit/internal/record"
)

func TestResolve_FallbackOrder(t *testing.T) {
	chain := []record.Candidate{record.Key("name"), record.Key("title")}

	tests := []struct {
		name string
		json string
		want string
	}{
		{"first wins", `{"name": "Morning Run", "title": "Ignored"}`, "Morning Run"},
		{"second used", `{"title": "Evening Ride"}`, "Evening Ride"},
		{"null skipped", `{"name": null, "title": "Swim"}`, "Swim"},
		{"empty string kept", `{"name": "", "title": "Swim"}`, ""},
		{"default", `{}`, "Activity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Resolve(decode(t, tt.json), "Activity", chain...))
		})
	}
}

func TestScalar_SkipsNested(t *testing.T) {
	r := decode(t, `{"team": {"name": "Blue"}, "team_name": "Fallback"}`)

	got := record.Resolve(r, "No Team", record.Scalar("team"), record.Key("team_name"))
	assert.Equal(t, "Fallback", got)

	got = record.Resolve(r, "No Team", record.Sub("team", "name"), record.Key("team_name"))
	assert.Equal(t, "Blue", got)
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"object username", `{"user": {"username": "ada"}}`, "ada"},
		{"object name", `{"user": {"name": "Ada"}}`, "Ada"},
		{"scalar", `{"user": 42}`, "42"},
		{"object without name", `{"user": {"id": 3}}`, "N/A"},
		{"absent", `{}`, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Resolve(decode(t, tt.json), "N/A", record.Named("user")))
		})
	}
}

func TestFlag(t *testing.T) {
	c := record.Flag("is_active", "Active", "Inactive")

	assert.Equal(t, "Active", record.Resolve(decode(t, `{"is_active": true}`), "?", c))
	assert.Equal(t, "Inactive", record.Resolve(decode(t, `{"is_active": false}`), "?", c))
	assert.Equal(t, "Inactive", record.Resolve(decode(t, `{"is_active": 0}`), "?", c))
	assert.Equal(t, "?", record.Resolve(decode(t, `{}`), "?", c))
}

func TestDate_RequiresTruthy(t *testing.T) {
	f := record.NewDateFormatter("en-US").WithLocation(time.UTC)
	c := record.Date("date", f)

	assert.Equal(t, "1/15/2024", record.Resolve(decode(t, `{"date": "2024-01-15T10:30:00Z"}`), "N/A", c))
	assert.Equal(t, "N/A", record.Resolve(decode(t, `{"date": ""}`), "N/A", c))
	assert.Equal(t, "N/A", record.Resolve(decode(t, `{"date": null}`), "N/A", c))
	assert.Equal(t, "N/A", record.Resolve(decode(t, `{}`), "N/A", c))
}

func TestFirst_NoCandidates(t *testing.T) {
	_, ok := record.First(record.Record{"a": "b"})
	assert.False(t, ok)
}

func TestNonZero(t *testing.T) {
	c := record.NonZero("bio")

	assert.Equal(t, "hi", record.Resolve(decode(t, `{"bio": "hi"}`), "-", c))
	assert.Equal(t, "-", record.Resolve(decode(t, `{"bio": ""}`), "-", c))
	assert.Equal(t, "-", record.Resolve(decode(t, `{"bio": 0}`), "-", c))
}
