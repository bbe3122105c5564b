package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alder-apps/growthbot/internal/domain"
)

const journalColumns = `id, user_id, content, mood_rating, tags, created_at`

func scanJournalEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Content, &e.MoodRating, &e.Tags, &e.CreatedAt)
	return e, err
}

func (q *Queries) CreateJournalEntry(ctx context.Context, e domain.JournalEntry) (domain.JournalEntry, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO journal_entries (id, user_id, content, mood_rating, tags)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+journalColumns,
		e.ID, e.UserID, e.Content, e.MoodRating, e.Tags)
	return scanJournalEntry(row)
}

// ListJournalByUser returns the user's journal entries newest first.
func (q *Queries) ListJournalByUser(ctx context.Context, userID int64) ([]domain.JournalEntry, error) {
	return q.queryJournal(ctx,
		`SELECT `+journalColumns+` FROM journal_entries
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListJournalSince returns entries created at or after since, newest first.
func (q *Queries) ListJournalSince(ctx context.Context, userID int64, since time.Time) ([]domain.JournalEntry, error) {
	return q.queryJournal(ctx,
		`SELECT `+journalColumns+` FROM journal_entries
		 WHERE user_id = $1 AND created_at >= $2
		 ORDER BY created_at DESC`, userID, since)
}

// ListJournalIDsBeyondNewest returns ids of every entry except the newest
// keep. Used by retention cleanup.
func (q *Queries) ListJournalIDsBeyondNewest(ctx context.Context, keep int) ([]uuid.UUID, error) {
	rows, err := q.db.Query(ctx,
		`SELECT id FROM journal_entries
		 ORDER BY created_at DESC OFFSET $1`, keep)
	if err != nil {
		return nil, fmt.Errorf("list excess journal entries: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (q *Queries) DeleteJournalEntriesByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := q.db.Exec(ctx, `DELETE FROM journal_entries WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete journal entries: %w", err)
	}
	return nil
}

func (q *Queries) queryJournal(ctx context.Context, sql string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
