package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type retentionStore interface {
	ListSituationIDsBeyondNewest(ctx context.Context, keep int) ([]uuid.UUID, error)
	DeleteAdviceBySituationIDs(ctx context.Context, ids []uuid.UUID) error
	DeleteSituationsByIDs(ctx context.Context, ids []uuid.UUID) error
	ListJournalIDsBeyondNewest(ctx context.Context, keep int) ([]uuid.UUID, error)
	DeleteJournalEntriesByIDs(ctx context.Context, ids []uuid.UUID) error
}

// RetentionService trims stored history to the configured limits. Advice
// records of trimmed situations are deleted explicitly, before their
// situations, since the store has no cascading foreign key.
type RetentionService struct {
	store         retentionStore
	maxSituations int
	maxEntries    int
}

func NewRetentionService(store retentionStore, maxSituations, maxEntries int) *RetentionService {
	return &RetentionService{
		store:         store,
		maxSituations: maxSituations,
		maxEntries:    maxEntries,
	}
}

// Cleanup deletes everything beyond the newest maxSituations situations
// and maxEntries journal entries, oldest first.
func (s *RetentionService) Cleanup(ctx context.Context) error {
	situationIDs, err := s.store.ListSituationIDsBeyondNewest(ctx, s.maxSituations)
	if err != nil {
		return fmt.Errorf("find excess situations: %w", err)
	}
	if len(situationIDs) > 0 {
		if err := s.store.DeleteAdviceBySituationIDs(ctx, situationIDs); err != nil {
			return fmt.Errorf("cascade advice delete: %w", err)
		}
		if err := s.store.DeleteSituationsByIDs(ctx, situationIDs); err != nil {
			return fmt.Errorf("delete situations: %w", err)
		}
		slog.Info("retention: situations trimmed", "deleted", len(situationIDs))
	}

	entryIDs, err := s.store.ListJournalIDsBeyondNewest(ctx, s.maxEntries)
	if err != nil {
		return fmt.Errorf("find excess journal entries: %w", err)
	}
	if len(entryIDs) > 0 {
		if err := s.store.DeleteJournalEntriesByIDs(ctx, entryIDs); err != nil {
			return fmt.Errorf("delete journal entries: %w", err)
		}
		slog.Info("retention: journal trimmed", "deleted", len(entryIDs))
	}

	return nil
}
