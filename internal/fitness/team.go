package fitness

import (
	"strings"

	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/view"
)

// Team is one team as displayed.
type Team struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Status      string   `json:"status,omitempty"`
	Members     string   `json:"members_count,omitempty"`
	Points      string   `json:"total_points,omitempty"`
	Captain     string   `json:"captain,omitempty"`
	Description string   `json:"description,omitempty"`
	Created     string   `json:"created,omitempty"`
	MemberNames []string `json:"members,omitempty"`
}

// DecodeTeam resolves the columns and detail fields of rec.
func DecodeTeam(rec record.Record, _ int, dates record.DateFormatter) Team {
	return Team{
		ID:          recordID(rec),
		Name:        record.Resolve(rec, "Team Name", record.Key("name")),
		Status:      activeStatus(rec),
		Members:     record.Resolve(rec, "", record.Key("members_count")),
		Points:      record.Resolve(rec, "", record.Key("total_points")),
		Captain:     record.Resolve(rec, "", record.Named("captain")),
		Description: record.Resolve(rec, "", record.NonZero("description")),
		Created:     record.Resolve(rec, "", record.Date("created_date", dates)),
		MemberNames: memberNames(rec),
	}
}

// memberNames renders each member by username, then name, then raw value.
func memberNames(rec record.Record) []string {
	members, ok := rec.List("members")
	if !ok || len(members) == 0 {
		return nil
	}
	names := make([]string, len(members))
	for i, m := range members {
		name, found := record.DisplayName(m)
		if !found {
			name = record.Format(m)
		}
		names[i] = name
	}
	return names
}

func teamDetails(t Team) []view.Field {
	var fields []view.Field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, view.Field{Label: label, Value: value})
		}
	}
	add("Team", t.Name)
	add("Status", t.Status)
	add("Description", t.Description)
	add("Members", t.Members)
	add("Total Points", t.Points)
	add("Created", t.Created)
	add("Captain", t.Captain)
	add("Member List", strings.Join(t.MemberNames, ", "))
	return fields
}

// TeamDefinition returns the teams table.
func TeamDefinition() view.Definition[Team] {
	return view.Definition[Team]{
		Resource: string(Teams),
		Title:    "Teams",
		Noun:     "teams",
		Decode:   DecodeTeam,
		Columns: []view.Column[Team]{
			{Title: "Team", Width: 22, Value: func(t Team) string { return t.Name }},
			{Title: "Status", Width: 8, Value: func(t Team) string { return t.Status }},
			{Title: "Members", Width: 8, Value: func(t Team) string { return t.Members }},
			{Title: "Points", Width: 8, Value: func(t Team) string { return t.Points }},
			{Title: "Captain", Width: 18, Value: func(t Team) string { return t.Captain }},
		},
		Details: teamDetails,
	}
}
