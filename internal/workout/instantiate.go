package workout

import (
	"strings"
	"time"
)

// NewSessionFromTemplate builds an in-progress session from a stored template.
// The session gets its own copy of the exercises with every set reset.
func NewSessionFromTemplate(id string, t Template, now time.Time) (Session, error) {
	if strings.TrimSpace(t.Name) == "" {
		return Session{}, ErrNotATemplate
	}
	if err := validateExercises(t.Exercises); err != nil {
		return Session{}, err
	}

	templateID := t.ID
	return Session{
		ID:         id,
		OwnerID:    t.OwnerID,
		Title:      t.Title,
		TemplateID: &templateID,
		Exercises:  resetExercises(t.Exercises),
		CreatedAt:  now,
	}, nil
}

// NewSessionFromDefinition is NewSessionFromTemplate for a static definition.
func NewSessionFromDefinition(id, ownerID string, d Definition, now time.Time) (Session, error) {
	if err := validateExercises(d.Exercises); err != nil {
		return Session{}, err
	}
	return Session{
		ID:        id,
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(d.Title),
		Exercises: resetExercises(d.Exercises),
		CreatedAt: now,
	}, nil
}

// NewTemplate validates and builds a template owned by ownerID.
func NewTemplate(id, ownerID, title, name string, exercises []ExerciseEntry, now time.Time) (Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Template{}, ErrTemplateNameEmpty
	}
	if err := validateExercises(exercises); err != nil {
		return Template{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = name
	}
	return Template{
		ID:        id,
		OwnerID:   ownerID,
		Title:     title,
		Name:      name,
		Exercises: resetExercises(exercises),
		CreatedAt: now,
	}, nil
}

// NewTemplateFromSession copies the structure of a session, not its
// completion state, into a new template.
func NewTemplateFromSession(id string, s Session, name string, now time.Time) (Template, error) {
	return NewTemplate(id, s.OwnerID, s.Title, name, s.Exercises, now)
}
