package domain

import (
	"time"

	"github.com/google/uuid"
)

// Situation is a user-submitted personal challenge with a desired outcome,
// a set of emotions and a mood rating. It stays open until resolved.
type Situation struct {
	ID             uuid.UUID
	UserID         int64
	Topic          string
	Description    string
	DesiredOutcome string
	Emotions       []string
	MoodRating     int
	CreatedAt      time.Time
	ResolvedAt     *time.Time
	Resolution     *string
	Reflection     *string
}

func (s *Situation) IsResolved() bool {
	return s.ResolvedAt != nil
}
