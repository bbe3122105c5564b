package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alder-apps/growthbot/internal/domain"
	"github.com/alder-apps/growthbot/internal/repository"
)

type AdviceService struct {
	queries *repository.Queries
}

func NewAdviceService(queries *repository.Queries) *AdviceService {
	return &AdviceService{queries: queries}
}

func (s *AdviceService) LatestForSituation(ctx context.Context, situationID uuid.UUID) (*domain.Advice, error) {
	advice, err := s.queries.LatestAdviceBySituation(ctx, situationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdviceNotFound
		}
		return nil, fmt.Errorf("latest advice: %w", err)
	}
	return &advice, nil
}

// RecordFeedback sets the helpful flag on the latest advice of the
// situation. Last write wins when rated twice.
func (s *AdviceService) RecordFeedback(ctx context.Context, situationID uuid.UUID, helpful bool) error {
	advice, err := s.LatestForSituation(ctx, situationID)
	if err != nil {
		return err
	}
	return s.queries.SetAdviceFeedback(ctx, advice.ID, helpful)
}
