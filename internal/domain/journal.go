package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is immutable after creation. MoodRating is nil when the
// entry was written without a rating.
type JournalEntry struct {
	ID         uuid.UUID
	UserID     int64
	Content    string
	MoodRating *int
	Tags       []string
	CreatedAt  time.Time
}
