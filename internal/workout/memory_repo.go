package workout

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// MemoryRepo keeps templates and sessions in process. Used for local
// development (storage = "memory") and in tests.
type MemoryRepo struct {
	mu        sync.RWMutex
	templates map[string]Template
	sessions  map[string]Session
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		templates: map[string]Template{},
		sessions:  map[string]Session{},
	}
}

func (r *MemoryRepo) InsertTemplate(_ context.Context, t Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.idTaken(t.ID) {
		return fmt.Errorf("template %s: %w", t.ID, ErrDuplicateID)
	}
	r.templates[t.ID] = t.clone()
	return nil
}

func (r *MemoryRepo) GetTemplate(_ context.Context, id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	t = t.clone()
	return &t, nil
}

func (r *MemoryRepo) ListTemplates(_ context.Context, ownerID string) ([]Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := []Template{}
	for _, t := range r.templates {
		if t.OwnerID == ownerID {
			templates = append(templates, t.clone())
		}
	}
	slices.SortFunc(templates, func(a, b Template) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return templates, nil
}

func (r *MemoryRepo) DeleteTemplate(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.templates[id]
	if !ok || t.OwnerID != ownerID {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	delete(r.templates, id)
	return nil
}

func (r *MemoryRepo) InsertSession(_ context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.idTaken(s.ID) {
		return fmt.Errorf("session %s: %w", s.ID, ErrDuplicateID)
	}
	r.sessions[s.ID] = s.clone()
	return nil
}

// templates and sessions share one id space, as they share one table in postgres
func (r *MemoryRepo) idTaken(id string) bool {
	_, isTemplate := r.templates[id]
	_, isSession := r.sessions[id]
	return isTemplate || isSession
}

func (r *MemoryRepo) GetSession(_ context.Context, ownerID, id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok || s.OwnerID != ownerID {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	s = s.clone()
	return &s, nil
}

func (r *MemoryRepo) ListSessions(_ context.Context, ownerID string, params ListSessionsParams) ([]Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := []Session{}
	for _, s := range r.sessions {
		if s.OwnerID != ownerID {
			continue
		}
		if params.OnlyCompleted && !s.Completed {
			continue
		}
		if params.Since != nil && s.ActivityTime().Before(*params.Since) {
			continue
		}
		sessions = append(sessions, s.clone())
	}
	slices.SortFunc(sessions, func(a, b Session) int {
		if c := b.ActivityTime().Compare(a.ActivityTime()); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if params.Limit > 0 && len(sessions) > params.Limit {
		sessions = sessions[:params.Limit]
	}
	return sessions, nil
}

func (r *MemoryRepo) SetCompletion(_ context.Context, ownerID, sessionID string, exerciseIdx, setIdx int, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.OwnerID != ownerID {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if exerciseIdx < 0 || exerciseIdx >= len(s.Exercises) {
		return fmt.Errorf("session %s exercise %d: %w", sessionID, exerciseIdx, ErrNotFound)
	}
	if setIdx < 0 || setIdx >= len(s.Exercises[exerciseIdx].Sets) {
		return fmt.Errorf("session %s exercise %d set %d: %w", sessionID, exerciseIdx, setIdx, ErrNotFound)
	}
	// stored value is private to the repo, mutate in place
	s.Exercises[exerciseIdx].Sets[setIdx].Completed = completed
	return nil
}

func (r *MemoryRepo) CompleteSession(_ context.Context, ownerID, sessionID string, rating int, comment string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.OwnerID != ownerID {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if s.Completed {
		return ErrAlreadyCompleted
	}
	s.Completed = true
	s.CompletedAt = &completedAt
	s.Rating = &rating
	s.Comment = comment
	r.sessions[sessionID] = s
	return nil
}
