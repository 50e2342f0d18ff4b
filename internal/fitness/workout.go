package fitness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/octofit/octofit/internal/record"
	"github.com/octofit/octofit/internal/view"
)

// exercisePreviewLimit is how many exercises the detail card lists.
const exercisePreviewLimit = 3

// Workout is one suggested workout as displayed.
type Workout struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Difficulty    string   `json:"difficulty"`
	Type          string   `json:"type"`
	Duration      string   `json:"duration"`
	Calories      string   `json:"calories_estimate"`
	ExerciseCount int      `json:"exercise_count"`
	Description   string   `json:"description,omitempty"`
	Equipment     string   `json:"equipment,omitempty"`
	TargetMuscles string   `json:"target_muscle_groups,omitempty"`
	Created       string   `json:"created,omitempty"`
	CreatedBy     string   `json:"created_by,omitempty"`
	Exercises     []string `json:"exercises,omitempty"`
}

// DecodeWorkout resolves the columns and detail fields of rec.
func DecodeWorkout(rec record.Record, index int, dates record.DateFormatter) Workout {
	exercises, _ := rec.List("exercises")
	return Workout{
		ID:            recordID(rec),
		Name:          record.Resolve(rec, fmt.Sprintf("Workout %d", index+1), record.Key("name"), record.Key("title")),
		Difficulty:    record.Resolve(rec, "", record.Key("difficulty")),
		Type:          record.Resolve(rec, "", record.Key("workout_type")),
		Duration:      workoutDuration(rec),
		Calories:      record.Resolve(rec, "", record.Key("calories_estimate")),
		ExerciseCount: len(exercises),
		Description:   record.Resolve(rec, "", record.NonZero("description")),
		Equipment:     record.Resolve(rec, "", record.NonZero("equipment")),
		TargetMuscles: record.Resolve(rec, "", record.NonZero("target_muscle_groups")),
		Created:       record.Resolve(rec, "", record.Date("created_date", dates)),
		CreatedBy:     workoutCreator(rec),
		Exercises:     exerciseLines(exercises),
	}
}

func workoutDuration(rec record.Record) string {
	if v, ok := record.First(rec, record.Key("duration")); ok {
		return v + " minutes"
	}
	return ""
}

func workoutCreator(rec record.Record) string {
	if !rec.Truthy("created_by") {
		return ""
	}
	return record.Resolve(rec, "", record.Sub("created_by", "username"), record.Key("created_by"))
}

// exerciseLines renders each exercise as "name - SxR" or "name - Ds".
func exerciseLines(exercises []any) []string {
	if len(exercises) == 0 {
		return nil
	}
	lines := make([]string, len(exercises))
	for i, ex := range exercises {
		lines[i] = exerciseLine(ex)
	}
	return lines
}

func exerciseLine(ex any) string {
	obj, ok := ex.(map[string]any)
	if !ok {
		return record.Format(ex)
	}
	rec := record.Record(obj)
	var b strings.Builder
	b.WriteString(record.Resolve(rec, record.Format(ex), record.NonZero("name")))
	if rec.Truthy("sets") && rec.Truthy("reps") {
		fmt.Fprintf(&b, " - %sx%s", rec.String("sets"), rec.String("reps"))
	}
	if rec.Truthy("duration") {
		fmt.Fprintf(&b, " - %ss", rec.String("duration"))
	}
	return b.String()
}

// ExercisePreview returns the first few exercise lines followed by an
// "...and N more" line when some are hidden.
func (w Workout) ExercisePreview() []string {
	if len(w.Exercises) <= exercisePreviewLimit {
		return w.Exercises
	}
	preview := append([]string{}, w.Exercises[:exercisePreviewLimit]...)
	return append(preview, fmt.Sprintf("...and %d more", len(w.Exercises)-exercisePreviewLimit))
}

func workoutDetails(w Workout) []view.Field {
	var fields []view.Field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, view.Field{Label: label, Value: value})
		}
	}
	add("Name", w.Name)
	add("Difficulty", w.Difficulty)
	add("Description", w.Description)
	add("Duration", w.Duration)
	add("Est. Calories", w.Calories)
	add("Type", w.Type)
	add("Equipment", w.Equipment)
	add("Target Muscles", w.TargetMuscles)
	add("Created", w.Created)
	add("Created by", w.CreatedBy)
	for _, line := range w.ExercisePreview() {
		add("Exercise", line)
	}
	return fields
}

// WorkoutDefinition returns the workouts table.
func WorkoutDefinition() view.Definition[Workout] {
	return view.Definition[Workout]{
		Resource: string(Workouts),
		Title:    "Workouts",
		Noun:     "workouts",
		Decode:   DecodeWorkout,
		Columns: []view.Column[Workout]{
			{Title: "Workout", Width: 24, Value: func(w Workout) string { return w.Name }},
			{Title: "Difficulty", Width: 10, Value: func(w Workout) string { return w.Difficulty }},
			{Title: "Type", Width: 12, Value: func(w Workout) string { return w.Type }},
			{Title: "Duration", Width: 12, Value: func(w Workout) string { return w.Duration }},
			{Title: "Est. Calories", Width: 13, Value: func(w Workout) string { return w.Calories }},
			{Title: "Exercises", Width: 9, Value: func(w Workout) string { return strconv.Itoa(w.ExerciseCount) }},
		},
		Details: workoutDetails,
	}
}
