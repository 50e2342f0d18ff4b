package fitness

import (
	"strconv"

	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/view"
)

//nolint:gochecknoglobals // Positional medals for the first three ranks.
var medals = []string{"🏆", "🥈", "🥉"}

// LeaderboardEntry is one leaderboard row as displayed. Entries keep the
// backend's order; Rank is positional.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	User       string `json:"user"`
	Team       string `json:"team"`
	Points     string `json:"total_points"`
	Activities string `json:"total_activities"`
	Calories   string `json:"total_calories"`
}

// DecodeLeaderboardEntry resolves every column of rec at position index.
func DecodeLeaderboardEntry(rec record.Record, index int, _ record.DateFormatter) LeaderboardEntry {
	return LeaderboardEntry{
		Rank: index + 1,
		User: record.Resolve(rec, "Unknown User",
			record.Sub("user", "username"), record.Key("username"), record.Key("name")),
		Team: record.Resolve(rec, "No Team",
			record.Sub("team", "name"), record.Key("team_name"), record.Scalar("team")),
		Points: record.Resolve(rec, "0",
			record.Key("total_points"), record.Key("points"), record.Key("score")),
		Activities: record.Resolve(rec, "0",
			record.Key("total_activities"), record.Key("activities_count"), record.Scalar("activities")),
		Calories: record.Resolve(rec, "0",
			record.Key("total_calories"), record.Key("calories_burned"), record.Key("calories")),
	}
}

// RankLabel returns the rank with a medal for the top three.
func (e LeaderboardEntry) RankLabel() string {
	n := strconv.Itoa(e.Rank)
	if e.Rank >= 1 && e.Rank <= len(medals) {
		return medals[e.Rank-1] + " " + n
	}
	return n
}

// LeaderboardDefinition returns the leaderboard table.
func LeaderboardDefinition() view.Definition[LeaderboardEntry] {
	return view.Definition[LeaderboardEntry]{
		Resource:   string(Leaderboard),
		Title:      "Leaderboard",
		Noun:       "leaderboard",
		EmptyText:  "No leaderboard data found.",
		TotalLabel: "Total entries",
		Decode:     DecodeLeaderboardEntry,
		Columns: []view.Column[LeaderboardEntry]{
			{Title: "#", Width: 6, Value: LeaderboardEntry.RankLabel},
			{Title: "User", Width: 18, Value: func(e LeaderboardEntry) string { return e.User }},
			{Title: "Team", Width: 16, Value: func(e LeaderboardEntry) string { return e.Team }},
			{Title: "Total Points", Width: 12, Value: func(e LeaderboardEntry) string { return e.Points }},
			{Title: "Activities", Width: 10, Value: func(e LeaderboardEntry) string { return e.Activities }},
			{Title: "Calories Burned", Width: 15, Value: func(e LeaderboardEntry) string { return e.Calories }},
		},
	}
}
