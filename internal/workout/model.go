package workout

import (
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type SetEntry struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

type ExerciseEntry struct {
	Name string     `json:"name"`
	Sets []SetEntry `json:"sets"`
}

// Template is a named, reusable workout. It never carries completion state.
type Template struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"ownerId"`
	Title     string          `json:"title"`
	Name      string          `json:"templateName"`
	Exercises []ExerciseEntry `json:"exercises"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Session is a concrete workout instance, in progress until completed.
type Session struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Title       string          `json:"title"`
	TemplateID  *string         `json:"templateId,omitempty"`
	Exercises   []ExerciseEntry `json:"exercises"`
	Completed   bool            `json:"isCompleted"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Rating      *int            `json:"rating,omitempty"`
	Comment     string          `json:"comment"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Progress struct {
	CompletedSets int     `json:"completedSets"`
	TotalSets     int     `json:"totalSets"`
	Percent       float64 `json:"percent"`
}

// Progress is derived on read and never persisted.
func (s *Session) Progress() Progress {
	var p Progress
	for _, e := range s.Exercises {
		for _, set := range e.Sets {
			p.TotalSets++
			if set.Completed {
				p.CompletedSets++
			}
		}
	}
	if p.TotalSets > 0 {
		p.Percent = float64(p.CompletedSets) / float64(p.TotalSets) * 100
	}
	return p
}

// ActivityTime is the instant a session counts towards adherence.
func (s *Session) ActivityTime() time.Time {
	if s.CompletedAt != nil {
		return *s.CompletedAt
	}
	return s.CreatedAt
}

// resetExercises deep copies exercises, clearing completion flags and
// clamping negative numbers to zero.
func resetExercises(exercises []ExerciseEntry) []ExerciseEntry {
	out := make([]ExerciseEntry, len(exercises))
	for i, e := range exercises {
		sets := make([]SetEntry, len(e.Sets))
		for j, s := range e.Sets {
			sets[j] = SetEntry{
				Reps:   max(s.Reps, 0),
				Weight: max(s.Weight, 0),
			}
		}
		out[i] = ExerciseEntry{
			Name: strings.TrimSpace(e.Name),
			Sets: sets,
		}
	}
	return out
}

func cloneExercises(exercises []ExerciseEntry) []ExerciseEntry {
	if exercises == nil {
		return nil
	}
	out := make([]ExerciseEntry, len(exercises))
	for i, e := range exercises {
		out[i] = ExerciseEntry{
			Name: e.Name,
			Sets: append([]SetEntry(nil), e.Sets...),
		}
	}
	return out
}

func validateExercises(exercises []ExerciseEntry) error {
	if len(exercises) == 0 {
		return invalidArgf("no exercises")
	}
	for i, e := range exercises {
		if strings.TrimSpace(e.Name) == "" {
			return invalidArgf("exercise %d has no name", i)
		}
		if len(e.Sets) == 0 {
			return invalidArgf("exercise %d (%s) has no sets", i, e.Name)
		}
	}
	return nil
}

func (t Template) clone() Template {
	t.Exercises = cloneExercises(t.Exercises)
	return t
}

func (s Session) clone() Session {
	s.Exercises = cloneExercises(s.Exercises)
	if s.TemplateID != nil {
		id := *s.TemplateID
		s.TemplateID = &id
	}
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		s.CompletedAt = &at
	}
	if s.Rating != nil {
		r := *s.Rating
		s.Rating = &r
	}
	return s
}
