package fitness

import (
	"fmt"

	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/view"
)

// User is one user profile as displayed.
type User struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"username"`
	Status     string `json:"status,omitempty"`
	Email      string `json:"email,omitempty"`
	Team       string `json:"team,omitempty"`
	Points     string `json:"total_points,omitempty"`
	Activities string `json:"activities_count,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Joined     string `json:"joined,omitempty"`
	LastLogin  string `json:"last_login,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// DecodeUser resolves the columns and detail fields of rec.
func DecodeUser(rec record.Record, index int, dates record.DateFormatter) User {
	return User{
		ID:         recordID(rec),
		Name:       record.Resolve(rec, fmt.Sprintf("User %d", index+1), record.Key("username"), record.Key("name")),
		Status:     activeStatus(rec),
		Email:      record.Resolve(rec, "", record.Key("email")),
		Team:       record.Resolve(rec, "", record.Sub("team", "name"), record.Scalar("team")),
		Points:     record.Resolve(rec, "", record.Key("total_points")),
		Activities: record.Resolve(rec, "", record.Key("activities_count")),
		FullName:   fullName(rec),
		Joined:     record.Resolve(rec, "", record.Date("date_joined", dates)),
		LastLogin:  record.Resolve(rec, "", record.Date("last_login", dates)),
		Bio:        record.Resolve(rec, "", record.NonZero("bio")),
	}
}

// activeStatus renders is_active as Active or Inactive, or "" when absent.
func activeStatus(rec record.Record) string {
	return record.Resolve(rec, "", record.Flag("is_active", "Active", "Inactive"))
}

// fullName is shown only when both name parts are set.
func fullName(rec record.Record) string {
	if !rec.Truthy("first_name") || !rec.Truthy("last_name") {
		return ""
	}
	return rec.String("first_name") + " " + rec.String("last_name")
}

func userDetails(u User) []view.Field {
	var fields []view.Field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, view.Field{Label: label, Value: value})
		}
	}
	add("Username", u.Name)
	add("Status", u.Status)
	add("Email", u.Email)
	add("Name", u.FullName)
	add("Team", u.Team)
	add("Total Points", u.Points)
	add("Activities", u.Activities)
	add("Joined", u.Joined)
	add("Last Login", u.LastLogin)
	add("Bio", u.Bio)
	return fields
}

// UserDefinition returns the users table.
func UserDefinition() view.Definition[User] {
	return view.Definition[User]{
		Resource: string(Users),
		Title:    "Users",
		Noun:     "users",
		Decode:   DecodeUser,
		Columns: []view.Column[User]{
			{Title: "User", Width: 18, Value: func(u User) string { return u.Name }},
			{Title: "Status", Width: 8, Value: func(u User) string { return u.Status }},
			{Title: "Email", Width: 26, Value: func(u User) string { return u.Email }},
			{Title: "Team", Width: 16, Value: func(u User) string { return u.Team }},
			{Title: "Points", Width: 8, Value: func(u User) string { return u.Points }},
			{Title: "Activities", Width: 10, Value: func(u User) string { return u.Activities }},
		},
		Details: userDetails,
	}
}
