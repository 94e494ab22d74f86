package workout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=workout_test

type Repo interface {
	InsertTemplate(ctx context.Context, t Template) error
	GetTemplate(ctx context.Context, id string) (*Template, error)
	ListTemplates(ctx context.Context, ownerID string) ([]Template, error)
	DeleteTemplate(ctx context.Context, ownerID, id string) error
	InsertSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, ownerID, id string) (*Session, error)
	ListSessions(ctx context.Context, ownerID string, params ListSessionsParams) ([]Session, error)
	SetCompletion(ctx context.Context, ownerID, sessionID string, exerciseIdx, setIdx int, completed bool) error
	CompleteSession(ctx context.Context, ownerID, sessionID string, rating int, comment string, completedAt time.Time) error
}

// CompletionHook runs after a session was completed and persisted.
type CompletionHook func(ctx context.Context, session Session)

type CompleteSessionParams struct {
	Rating  int
	Comment string
	// SaveAsTemplate, when set, derives a template with this name
	// from the completed session.
	SaveAsTemplate string
}

type CompleteSessionResult struct {
	Session  Session
	Template *Template
	// TemplateErr is set when the session completed but deriving the template failed.
	TemplateErr error
}

type Service struct {
	repo    Repo
	metrics *metrics.Manager
	locks   *sessionLocks
	hooks   []CompletionHook

	now   func() time.Time
	newID func() string
}

func NewService(repo Repo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		metrics: metricsManager,
		locks:   newSessionLocks(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// OnSessionCompleted registers a hook. Not safe to call once the service is serving.
func (s *Service) OnSessionCompleted(hook CompletionHook) {
	s.hooks = append(s.hooks, hook)
}

func validateID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalidArgf("malformed %s id %q", kind, id)
	}
	return nil
}

func validateOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return invalidArgf("owner id empty")
	}
	return nil
}

func (s *Service) ListTemplates(ctx context.Context, ownerID string) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.listTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	templates, err := s.repo.ListTemplates(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (s *Service) CreateTemplate(ctx context.Context, ownerID, title, name string, exercises []ExerciseEntry) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.createTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	t, err := NewTemplate(s.newID(), ownerID, title, name, exercises, s.now())
	if err != nil {
		return nil, err
	}
	return s.insertTemplate(ctx, t)
}

// CreateTemplateFrom derives a template from the structure of session.
func (s *Service) CreateTemplateFrom(ctx context.Context, session Session, name string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.createTemplateFrom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.ID))

	t, err := NewTemplateFromSession(s.newID(), session, name, s.now())
	if err != nil {
		return nil, err
	}
	return s.insertTemplate(ctx, t)
}

func (s *Service) CreateTemplateFromSession(ctx context.Context, ownerID, sessionID, name string) (*Template, error) {
	session, err := s.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.CreateTemplateFrom(ctx, *session, name)
}

func (s *Service) insertTemplate(ctx context.Context, t Template) (*Template, error) {
	if err := s.repo.InsertTemplate(ctx, t); err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}
	s.metrics.CounterTemplatesCreated.Inc()
	log.Debugf("template [%s] %q created for owner [%s]", t.ID, t.Name, t.OwnerID)
	return &t, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, ownerID, templateID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.deleteTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", templateID))

	if err := validateOwner(ownerID); err != nil {
		return err
	}
	if err := validateID("template", templateID); err != nil {
		return err
	}
	if err := s.repo.DeleteTemplate(ctx, ownerID, templateID); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	s.metrics.CounterTemplatesDeleted.Inc()
	return nil
}

// Instantiate starts a new session from t, owned by the template owner.
func (s *Service) Instantiate(ctx context.Context, t Template) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.instantiate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", t.ID))

	session, err := NewSessionFromTemplate(s.newID(), t, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	s.metrics.CounterSessionsInstantiated.WithLabelValues("template").Inc()
	return &session, nil
}

// InstantiateFromTemplate loads the owner's template and starts a session from it.
// Passing a session id fails with ErrNotATemplate.
func (s *Service) InstantiateFromTemplate(ctx context.Context, ownerID, templateID string) (*Session, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("template", templateID); err != nil {
		return nil, err
	}

	t, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("get template: %w", err)
		}
		if _, sessErr := s.repo.GetSession(ctx, ownerID, templateID); sessErr == nil {
			return nil, ErrNotATemplate
		}
		return nil, err
	}
	if t.OwnerID != ownerID {
		return nil, fmt.Errorf("template %s: %w", templateID, ErrNotFound)
	}

	return s.Instantiate(ctx, *t)
}

func (s *Service) InstantiateFromDefinition(ctx context.Context, ownerID string, d Definition) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.instantiateFromDefinition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("definition.key", d.Key))

	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	session, err := NewSessionFromDefinition(s.newID(), ownerID, d, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	s.metrics.CounterSessionsInstantiated.WithLabelValues("definition").Inc()
	return &session, nil
}

func (s *Service) GetSession(ctx context.Context, ownerID, sessionID string) (*Session, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("session", sessionID); err != nil {
		return nil, err
	}
	session, err := s.repo.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

func (s *Service) ListSessions(ctx context.Context, ownerID string, params ListSessionsParams) ([]Session, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	sessions, err := s.repo.ListSessions(ctx, ownerID, params)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// SetCompletion toggles one set. Sets are independent of each other and the
// flag may change on completed sessions too.
func (s *Service) SetCompletion(ctx context.Context, ownerID, sessionID string, exerciseIdx, setIdx int, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.setCompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	if err := validateOwner(ownerID); err != nil {
		return err
	}
	if err := validateID("session", sessionID); err != nil {
		return err
	}
	if exerciseIdx < 0 || setIdx < 0 {
		return fmt.Errorf("session %s exercise %d set %d: %w", sessionID, exerciseIdx, setIdx, ErrNotFound)
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	if err := s.repo.SetCompletion(ctx, ownerID, sessionID, exerciseIdx, setIdx, completed); err != nil {
		return fmt.Errorf("set completion: %w", err)
	}
	s.metrics.CounterSetsToggled.Inc()
	return nil
}

// CompleteSession moves a session to its terminal state. There is no way back.
func (s *Service) CompleteSession(ctx context.Context, ownerID, sessionID string, params CompleteSessionParams) (_ *CompleteSessionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.completeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	if params.Rating < MinRating || params.Rating > MaxRating {
		return nil, ErrRatingOutOfRange
	}
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("session", sessionID); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(sessionID)
	session, err := s.completeLocked(ctx, ownerID, sessionID, params)
	unlock()
	if err != nil {
		return nil, err
	}

	s.metrics.CounterSessionsCompleted.Inc()
	s.metrics.HistogramSessionRating.Observe(float64(params.Rating))
	for _, hook := range s.hooks {
		hook(ctx, *session)
	}

	result := &CompleteSessionResult{Session: *session}
	if params.SaveAsTemplate != "" {
		t, err := s.CreateTemplateFrom(ctx, *session, params.SaveAsTemplate)
		if err != nil {
			log.Warnf("session [%s] completed, but saving it as template %q failed: %s", session.ID, params.SaveAsTemplate, err)
			result.TemplateErr = err
		} else {
			result.Template = t
		}
	}
	return result, nil
}

func (s *Service) completeLocked(ctx context.Context, ownerID, sessionID string, params CompleteSessionParams) (*Session, error) {
	session, err := s.repo.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Completed {
		return nil, ErrAlreadyCompleted
	}

	completedAt := s.now()
	if completedAt.Before(session.CreatedAt) {
		completedAt = session.CreatedAt
	}
	if err := s.repo.CompleteSession(ctx, ownerID, sessionID, params.Rating, params.Comment, completedAt); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	rating := params.Rating
	session.Completed = true
	session.CompletedAt = &completedAt
	session.Rating = &rating
	session.Comment = params.Comment
	return session, nil
}
