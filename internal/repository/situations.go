package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alder-apps/growthbot/internal/domain"
)

const situationColumns = `id, user_id, topic, description, desired_outcome, emotions,
	mood_rating, created_at, resolved_at, resolution, reflection`

func scanSituation(row pgx.Row) (domain.Situation, error) {
	var s domain.Situation
	err := row.Scan(&s.ID, &s.UserID, &s.Topic, &s.Description, &s.DesiredOutcome,
		&s.Emotions, &s.MoodRating, &s.CreatedAt, &s.ResolvedAt, &s.Resolution, &s.Reflection)
	return s, err
}

func (q *Queries) CreateSituation(ctx context.Context, s domain.Situation) (domain.Situation, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO situations (id, user_id, topic, description, desired_outcome, emotions, mood_rating)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+situationColumns,
		s.ID, s.UserID, s.Topic, s.Description, s.DesiredOutcome, s.Emotions, s.MoodRating)
	return scanSituation(row)
}

func (q *Queries) GetSituationByID(ctx context.Context, id uuid.UUID) (domain.Situation, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+situationColumns+` FROM situations WHERE id = $1`, id)
	return scanSituation(row)
}

// ListSituationsByUser returns the user's situations newest first.
func (q *Queries) ListSituationsByUser(ctx context.Context, userID int64) ([]domain.Situation, error) {
	return q.querySituations(ctx,
		`SELECT `+situationColumns+` FROM situations
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (q *Queries) ListRecentSituationsByUser(ctx context.Context, userID int64, limit int) ([]domain.Situation, error) {
	return q.querySituations(ctx,
		`SELECT `+situationColumns+` FROM situations
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
}

func (q *Queries) ListOpenSituationsByUser(ctx context.Context, userID int64, limit int) ([]domain.Situation, error) {
	return q.querySituations(ctx,
		`SELECT `+situationColumns+` FROM situations
		 WHERE user_id = $1 AND resolved_at IS NULL
		 ORDER BY created_at DESC LIMIT $2`, userID, limit)
}

func (q *Queries) LatestSituationByUser(ctx context.Context, userID int64) (domain.Situation, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+situationColumns+` FROM situations
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID)
	return scanSituation(row)
}

func (q *Queries) ResolveSituation(ctx context.Context, id uuid.UUID, resolution, reflection string, resolvedAt time.Time) error {
	_, err := q.db.Exec(ctx,
		`UPDATE situations SET resolved_at = $2, resolution = $3, reflection = $4 WHERE id = $1`,
		id, resolvedAt, resolution, reflection)
	if err != nil {
		return fmt.Errorf("resolve situation: %w", err)
	}
	return nil
}

// ListSituationIDsBeyondNewest returns ids of every situation except the
// newest keep, oldest excess first. Used by retention cleanup.
func (q *Queries) ListSituationIDsBeyondNewest(ctx context.Context, keep int) ([]uuid.UUID, error) {
	rows, err := q.db.Query(ctx,
		`SELECT id FROM situations
		 ORDER BY created_at DESC OFFSET $1`, keep)
	if err != nil {
		return nil, fmt.Errorf("list excess situations: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (q *Queries) DeleteSituationsByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := q.db.Exec(ctx, `DELETE FROM situations WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete situations: %w", err)
	}
	return nil
}

func (q *Queries) querySituations(ctx context.Context, sql string, args ...any) ([]domain.Situation, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query situations: %w", err)
	}
	defer rows.Close()

	var situations []domain.Situation
	for rows.Next() {
		s, err := scanSituation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan situation: %w", err)
		}
		situations = append(situations, s)
	}
	return situations, rows.Err()
}

func scanIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
