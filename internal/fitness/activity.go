package fitness

import (
	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/view"
)

const notAvailable = "N/A"

// Activity is one logged activity as displayed.
type Activity struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	Calories string `json:"calories"`
	Date     string `json:"date"`
	User     string `json:"user"`
}

// DecodeActivity resolves every display column of rec.
func DecodeActivity(rec record.Record, _ int, dates record.DateFormatter) Activity {
	return Activity{
		ID:       recordID(rec),
		Name:     activityName(rec),
		Type:     activityType(rec),
		Duration: activityDuration(rec),
		Calories: activityCalories(rec),
		Date:     record.Resolve(rec, notAvailable, record.Date("date", dates)),
		User:     record.Resolve(rec, notAvailable, record.Named("user")),
	}
}

func activityName(rec record.Record) string {
	return record.Resolve(rec, "Activity", record.Key("name"), record.Key("title"))
}

func activityType(rec record.Record) string {
	return record.Resolve(rec, notAvailable, record.Key("activity_type"), record.Key("type"))
}

// activityDuration renders minutes. An absent duration is "N/A" on its own,
// without the unit.
func activityDuration(rec record.Record) string {
	if v, ok := record.First(rec, record.Key("duration")); ok {
		return v + " min"
	}
	return notAvailable
}

func activityCalories(rec record.Record) string {
	return record.Resolve(rec, notAvailable, record.Key("calories_burned"), record.Key("calories"))
}

// ActivityDefinition returns the activities table.
func ActivityDefinition() view.Definition[Activity] {
	return view.Definition[Activity]{
		Resource: string(Activities),
		Title:    "Activities",
		Noun:     "activities",
		Decode:   DecodeActivity,
		Columns: []view.Column[Activity]{
			{Title: "Activity", Width: 24, Value: func(a Activity) string { return a.Name }},
			{Title: "Type", Width: 14, Value: func(a Activity) string { return a.Type }},
			{Title: "Duration", Width: 10, Value: func(a Activity) string { return a.Duration }},
			{Title: "Calories", Width: 10, Value: func(a Activity) string { return a.Calories }},
			{Title: "Date", Width: 12, Value: func(a Activity) string { return a.Date }},
			{Title: "User", Width: 16, Value: func(a Activity) string { return a.User }},
		},
	}
}
