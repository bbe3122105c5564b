package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alder-apps/growthbot/internal/domain"
)

type situationStore interface {
	CreateSituation(ctx context.Context, s domain.Situation) (domain.Situation, error)
	GetSituationByID(ctx context.Context, id uuid.UUID) (domain.Situation, error)
	ListRecentSituationsByUser(ctx context.Context, userID int64, limit int) ([]domain.Situation, error)
	ListOpenSituationsByUser(ctx context.Context, userID int64, limit int) ([]domain.Situation, error)
	LatestSituationByUser(ctx context.Context, userID int64) (domain.Situation, error)
	ResolveSituation(ctx context.Context, id uuid.UUID, resolution, reflection string, resolvedAt time.Time) error
	DeleteAdviceBySituationIDs(ctx context.Context, ids []uuid.UUID) error
	DeleteSituationsByIDs(ctx context.Context, ids []uuid.UUID) error
}

type SituationService struct {
	store situationStore
}

func NewSituationService(store situationStore) *SituationService {
	return &SituationService{store: store}
}

// Create persists a new open situation from completed intake data.
func (s *SituationService) Create(ctx context.Context, userID int64, topic, description, outcome string, emotions []string, moodRating int) (*domain.Situation, error) {
	if moodRating < 1 || moodRating > 10 {
		return nil, domain.ErrInvalidMoodRating
	}
	if len(emotions) == 0 {
		return nil, domain.ErrNoEmotions
	}

	situation, err := s.store.CreateSituation(ctx, domain.Situation{
		ID:             uuid.New(),
		UserID:         userID,
		Topic:          topic,
		Description:    description,
		DesiredOutcome: outcome,
		Emotions:       emotions,
		MoodRating:     moodRating,
	})
	if err != nil {
		return nil, fmt.Errorf("create situation: %w", err)
	}
	return &situation, nil
}

func (s *SituationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Situation, error) {
	situation, err := s.store.GetSituationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSituationNotFound
		}
		return nil, fmt.Errorf("get situation: %w", err)
	}
	return &situation, nil
}

func (s *SituationService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.Situation, error) {
	return s.store.ListRecentSituationsByUser(ctx, userID, limit)
}

func (s *SituationService) ListOpen(ctx context.Context, userID int64, limit int) ([]domain.Situation, error) {
	return s.store.ListOpenSituationsByUser(ctx, userID, limit)
}

func (s *SituationService) Latest(ctx context.Context, userID int64) (*domain.Situation, error) {
	situation, err := s.store.LatestSituationByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSituationNotFound
		}
		return nil, fmt.Errorf("latest situation: %w", err)
	}
	return &situation, nil
}

// Resolve stamps the situation resolved with the collected resolution and
// reflection texts.
func (s *SituationService) Resolve(ctx context.Context, id uuid.UUID, resolution, reflection string) error {
	return s.store.ResolveSituation(ctx, id, resolution, reflection, time.Now().UTC())
}

// Delete removes a situation and cascades deletion of its advice records.
func (s *SituationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteAdviceBySituationIDs(ctx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("cascade advice delete: %w", err)
	}
	return s.store.DeleteSituationsByIDs(ctx, []uuid.UUID{id})
}
