// Package fitness defines the five OctoFit resource views: activities,
// workouts, users, teams and the leaderboard.
package fitness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/view"
)

// Resource names one collection endpoint under the API base.
type Resource string

// Supported resources.
const (
	Activities  Resource = "activities"
	Workouts    Resource = "workouts"
	Users       Resource = "users"
	Teams       Resource = "teams"
	Leaderboard Resource = "leaderboard"
)

// ErrUnknownResource is returned by ParseResource for unsupported names.
var ErrUnknownResource = errors.New("unknown resource")

// All returns every resource in display order.
func All() []Resource {
	return []Resource{Activities, Workouts, Users, Teams, Leaderboard}
}

// ParseResource accepts a resource name case-insensitively, singular or plural.
func ParseResource(s string) (Resource, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range All() {
		if name == string(r) || name == r.singular() {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: activities, workouts, users, teams, leaderboard)", ErrUnknownResource, s)
}

// String implements fmt.Stringer.
func (r Resource) String() string {
	return string(r)
}

func (r Resource) singular() string {
	switch r {
	case Activities:
		return "activity"
	case Leaderboard:
		return "leaderboard"
	default:
		return strings.TrimSuffix(string(r), "s")
	}
}

// NewLoader builds the list view for r.
func NewLoader(r Resource, fetcher view.Fetcher, dates record.DateFormatter) (view.Loader, error) {
	switch r {
	case Activities:
		return view.New(ActivityDefinition(), fetcher, dates), nil
	case Workouts:
		return view.New(WorkoutDefinition(), fetcher, dates), nil
	case Users:
		return view.New(UserDefinition(), fetcher, dates), nil
	case Teams:
		return view.New(TeamDefinition(), fetcher, dates), nil
	case Leaderboard:
		return view.New(LeaderboardDefinition(), fetcher, dates), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, string(r))
	}
}

// recordID returns the record's id, if any, for structured output.
func recordID(rec record.Record) string {
	return record.Resolve(rec, "", record.Scalar("id"))
}
