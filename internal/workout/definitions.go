package workout

import (
	"slices"
	"strings"
)

// Definition is a static exercise list a session can be started from
// without a stored template.
type Definition struct {
	Key       string          `json:"key,omitempty"`
	Title     string          `json:"title"`
	Exercises []ExerciseEntry `json:"exercises"`
}

func sets(n, reps int, weight float64) []SetEntry {
	out := make([]SetEntry, n)
	for i := range out {
		out[i] = SetEntry{Reps: reps, Weight: weight}
	}
	return out
}

var definitions = []Definition{
	{
		Key:   "full-body",
		Title: "Full Body",
		Exercises: []ExerciseEntry{
			{Name: "Back Squat", Sets: sets(3, 8, 60)},
			{Name: "Bench Press", Sets: sets(3, 8, 50)},
			{Name: "Barbell Row", Sets: sets(3, 10, 40)},
			{Name: "Plank", Sets: sets(3, 1, 0)},
		},
	},
	{
		Key:   "push",
		Title: "Push Day",
		Exercises: []ExerciseEntry{
			{Name: "Bench Press", Sets: sets(4, 6, 60)},
			{Name: "Overhead Press", Sets: sets(3, 8, 35)},
			{Name: "Incline Dumbbell Press", Sets: sets(3, 10, 20)},
			{Name: "Triceps Pushdown", Sets: sets(3, 12, 25)},
		},
	},
	{
		Key:   "pull",
		Title: "Pull Day",
		Exercises: []ExerciseEntry{
			{Name: "Deadlift", Sets: sets(3, 5, 90)},
			{Name: "Pull Up", Sets: sets(4, 8, 0)},
			{Name: "Seated Cable Row", Sets: sets(3, 10, 45)},
			{Name: "Biceps Curl", Sets: sets(3, 12, 12)},
		},
	},
	{
		Key:   "legs",
		Title: "Leg Day",
		Exercises: []ExerciseEntry{
			{Name: "Back Squat", Sets: sets(4, 6, 70)},
			{Name: "Romanian Deadlift", Sets: sets(3, 8, 60)},
			{Name: "Walking Lunge", Sets: sets(3, 12, 16)},
			{Name: "Calf Raise", Sets: sets(4, 15, 40)},
		},
	},
}

// Definitions returns the built-in catalog. Callers get their own copy.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		d.Exercises = cloneExercises(d.Exercises)
		out[i] = d
	}
	return out
}

func DefinitionByKey(key string) (Definition, bool) {
	idx := slices.IndexFunc(definitions, func(d Definition) bool {
		return strings.EqualFold(d.Key, key)
	})
	if idx < 0 {
		return Definition{}, false
	}
	d := definitions[idx]
	d.Exercises = cloneExercises(d.Exercises)
	return d, true
}
