package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Session is the transient per-user scratchpad holding in-progress dialogue
// data. It is never persisted: an uncommitted dialogue is lost on restart.
type Session struct {
	UserID int64
	State  State

	// Situation intake
	Topic          string
	SituationText  string
	DesiredOutcome string
	Emotions       []string
	MoodRating     int

	// Journal intake
	JournalContent string
	Tags           []string

	// Situation awaiting an advice rating or a resolution
	AdvisedSituationID   uuid.UUID
	ResolvingSituationID uuid.UUID
	ResolutionText       string

	UpdatedAt time.Time
}

func NewSession(userID int64) *Session {
	return &Session{
		UserID:    userID,
		State:     SelectingAction,
		UpdatedAt: time.Now(),
	}
}

// AddEmotion appends an emotion, suppressing duplicates. Returns false when
// the emotion was already selected.
func (s *Session) AddEmotion(emotion string) bool {
	for _, e := range s.Emotions {
		if e == emotion {
			return false
		}
	}
	s.Emotions = append(s.Emotions, emotion)
	return true
}

// AddTag appends a journal tag, suppressing duplicates.
func (s *Session) AddTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return false
		}
	}
	s.Tags = append(s.Tags, tag)
	return true
}

// InJournalFlow disambiguates the shared RatingMood state: the journal flow
// has content recorded, the situation flow has a topic.
func (s *Session) InJournalFlow() bool {
	return s.JournalContent != ""
}

// InSituationFlow reports whether a situation intake is in progress.
func (s *Session) InSituationFlow() bool {
	return s.Topic != ""
}
