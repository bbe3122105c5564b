package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alder-apps/growthbot/internal/domain"
)

const adviceColumns = `id, situation_id, advice, was_helpful, created_at`

func (q *Queries) CreateAdvice(ctx context.Context, a domain.Advice) (domain.Advice, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO advice (id, situation_id, advice)
		 VALUES ($1, $2, $3)
		 RETURNING `+adviceColumns,
		a.ID, a.SituationID, a.Advice)

	var out domain.Advice
	err := row.Scan(&out.ID, &out.SituationID, &out.Advice, &out.WasHelpful, &out.CreatedAt)
	return out, err
}

func (q *Queries) LatestAdviceBySituation(ctx context.Context, situationID uuid.UUID) (domain.Advice, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+adviceColumns+` FROM advice
		 WHERE situation_id = $1 ORDER BY created_at DESC LIMIT 1`, situationID)

	var a domain.Advice
	err := row.Scan(&a.ID, &a.SituationID, &a.Advice, &a.WasHelpful, &a.CreatedAt)
	return a, err
}

// SetAdviceFeedback records the helpful flag. Last write wins.
func (q *Queries) SetAdviceFeedback(ctx context.Context, id uuid.UUID, helpful bool) error {
	_, err := q.db.Exec(ctx,
		`UPDATE advice SET was_helpful = $2 WHERE id = $1`, id, helpful)
	if err != nil {
		return fmt.Errorf("set advice feedback: %w", err)
	}
	return nil
}

// DeleteAdviceBySituationIDs removes all advice for the given situations.
// Cascade deletion is enforced here, not by a foreign key.
func (q *Queries) DeleteAdviceBySituationIDs(ctx context.Context, situationIDs []uuid.UUID) error {
	if len(situationIDs) == 0 {
		return nil
	}
	_, err := q.db.Exec(ctx, `DELETE FROM advice WHERE situation_id = ANY($1)`, situationIDs)
	if err != nil {
		return fmt.Errorf("delete advice: %w", err)
	}
	return nil
}
