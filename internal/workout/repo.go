package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type ListSessionsParams struct {
	OnlyCompleted bool
	// Since filters on the activity time (completed_at, falling back to created_at).
	Since *time.Time
	Limit int
}

type PsqlRepo struct {
	db db.Querier
}

func NewPsqlRepo(db db.Querier) *PsqlRepo {
	return &PsqlRepo{
		db: db,
	}
}

func (r *PsqlRepo) InsertTemplate(ctx context.Context, t Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.insertTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", t.ID))

	exercisesJson, err := json.Marshal(t.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout (id, owner_id, kind, title, name, exercises, created_at)
			VALUES ($1, $2, 'template', $3, $4, $5, $6);`,
		t.ID, t.OwnerID, t.Title, t.Name, exercisesJson, t.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("template %s: %w", t.ID, ErrDuplicateID)
		}
		return err
	}
	return nil
}

func (r *PsqlRepo) GetTemplate(ctx context.Context, id string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.getTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, owner_id, title, name, exercises, created_at
			FROM workout
			WHERE id = $1 AND kind = 'template';`,
		id,
	)
	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *PsqlRepo) ListTemplates(ctx context.Context, ownerID string) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, title, name, exercises, created_at
			FROM workout
			WHERE owner_id = $1 AND kind = 'template'
			ORDER BY created_at DESC, id;`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("templates.count", len(templates)))
	return templates, nil
}

// DeleteTemplate removes a template owned by ownerID. Sessions, unknown ids and
// templates of other owners all report ErrNotFound.
func (r *PsqlRepo) DeleteTemplate(ctx context.Context, ownerID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.deleteTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1 AND owner_id = $2 AND kind = 'template';`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *PsqlRepo) InsertSession(ctx context.Context, s Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.insertSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", s.ID))

	exercisesJson, err := json.Marshal(s.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout (id, owner_id, kind, title, template_id, exercises, is_completed, completed_at, rating, comment, created_at)
			VALUES ($1, $2, 'session', $3, $4, $5, $6, $7, $8, $9, $10);`,
		s.ID, s.OwnerID, s.Title, s.TemplateID, exercisesJson, s.Completed, s.CompletedAt, s.Rating, s.Comment, s.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("session %s: %w", s.ID, ErrDuplicateID)
		}
		return err
	}
	return nil
}

const sessionColumns = `id, owner_id, title, template_id, exercises, is_completed, completed_at, rating, comment, created_at`

func (r *PsqlRepo) GetSession(ctx context.Context, ownerID, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+`
			FROM workout
			WHERE id = $1 AND owner_id = $2 AND kind = 'session';`,
		id, ownerID,
	)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

// ListSessions returns the owner's sessions, most recent activity first.
func (r *PsqlRepo) ListSessions(ctx context.Context, ownerID string, params ListSessionsParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))
	span.SetAttributes(attribute.Bool("only-completed", params.OnlyCompleted))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM workout
			WHERE owner_id = $1 AND kind = 'session'
				AND ($2::boolean IS FALSE OR is_completed)
				AND ($3::timestamptz IS NULL OR COALESCE(completed_at, created_at) >= $3)
			ORDER BY COALESCE(completed_at, created_at) DESC, id
			LIMIT NULLIF($4::int, 0);`,
		ownerID, params.OnlyCompleted, params.Since, params.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

// SetCompletion flips a single set flag in place. Index bounds are checked in
// the same statement, so an out of range index matches no row.
func (r *PsqlRepo) SetCompletion(ctx context.Context, ownerID, sessionID string, exerciseIdx, setIdx int, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.setCompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session.id", sessionID),
		attribute.Int("exercise.index", exerciseIdx),
		attribute.Int("set.index", setIdx),
		attribute.Bool("completed", completed),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout
			SET exercises = jsonb_set(exercises, ARRAY[$3::int::text, 'sets', $4::int::text, 'completed'], to_jsonb($5::boolean))
			WHERE id = $1 AND owner_id = $2 AND kind = 'session'
				AND $3::int >= 0 AND $3::int < jsonb_array_length(exercises)
				AND $4::int >= 0 AND $4::int < jsonb_array_length(exercises -> $3::int -> 'sets');`,
		sessionID, ownerID, exerciseIdx, setIdx, completed,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s exercise %d set %d: %w", sessionID, exerciseIdx, setIdx, ErrNotFound)
	}
	return nil
}

func (r *PsqlRepo) CompleteSession(ctx context.Context, ownerID, sessionID string, rating int, comment string, completedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.completeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID), attribute.Int("rating", rating))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout
			SET is_completed = TRUE, completed_at = $3, rating = $4, comment = $5
			WHERE id = $1 AND owner_id = $2 AND kind = 'session' AND NOT is_completed;`,
		sessionID, ownerID, completedAt, rating, comment,
	)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return ErrRatingOutOfRange
		}
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// tell a missing session from one that was already completed
	var alreadyCompleted bool
	err = r.db.QueryRow(
		ctx,
		`SELECT is_completed FROM workout WHERE id = $1 AND owner_id = $2 AND kind = 'session';`,
		sessionID, ownerID,
	).Scan(&alreadyCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return err
	}
	if alreadyCompleted {
		return ErrAlreadyCompleted
	}
	return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
}

func scanTemplate(row pgx.Row) (*Template, error) {
	var (
		t             Template
		exercisesJson []byte
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Name, &exercisesJson, &t.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(exercisesJson, &t.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal template %s exercises: %w", t.ID, err)
	}
	return &t, nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var (
		s             Session
		exercisesJson []byte
	)
	if err := row.Scan(
		&s.ID, &s.OwnerID, &s.Title, &s.TemplateID, &exercisesJson,
		&s.Completed, &s.CompletedAt, &s.Rating, &s.Comment, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(exercisesJson, &s.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal session %s exercises: %w", s.ID, err)
	}
	return &s, nil
}
