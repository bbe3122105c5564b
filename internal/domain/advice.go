package domain

import (
	"time"

	"github.com/google/uuid"
)

// Advice is AI-generated guidance tied to exactly one situation.
// WasHelpful is nil until the user rates it; a repeated rating overwrites.
type Advice struct {
	ID          uuid.UUID
	SituationID uuid.UUID
	Advice      string
	WasHelpful  *bool
	CreatedAt   time.Time
}
