package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alder-apps/growthbot/internal/domain"
	"github.com/alder-apps/growthbot/internal/repository"
)

type JournalService struct {
	queries *repository.Queries
}

func NewJournalService(queries *repository.Queries) *JournalService {
	return &JournalService{queries: queries}
}

// Create persists a journal entry. Entries are immutable after creation.
func (s *JournalService) Create(ctx context.Context, userID int64, content string, moodRating int, tags []string) (*domain.JournalEntry, error) {
	var rating *int
	if moodRating != 0 {
		if moodRating < 1 || moodRating > 10 {
			return nil, domain.ErrInvalidMoodRating
		}
		rating = &moodRating
	}
	if tags == nil {
		tags = []string{}
	}

	entry, err := s.queries.CreateJournalEntry(ctx, domain.JournalEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Content:    content,
		MoodRating: rating,
		Tags:       tags,
	})
	if err != nil {
		return nil, fmt.Errorf("create journal entry: %w", err)
	}
	return &entry, nil
}
