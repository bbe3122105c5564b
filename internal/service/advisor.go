package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alder-apps/growthbot/internal/config"
	"github.com/alder-apps/growthbot/internal/domain"
)

const advisorSystemPrompt = "You are a compassionate AI life coach " +
	"specializing in personal growth and problem-solving. Provide empathetic, " +
	"constructive, and actionable advice for individuals facing life challenges. " +
	"Focus on self-improvement, emotional intelligence, and practical solutions."

// ApologyMessage is returned when advice generation fails for any reason.
const ApologyMessage = "I apologize, but I'm having trouble analyzing this situation right now. Please try again later."

type completer interface {
	Complete(ctx context.Context, model, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

type advisorStore interface {
	ListJournalSince(ctx context.Context, userID int64, since time.Time) ([]domain.JournalEntry, error)
	CreateAdvice(ctx context.Context, a domain.Advice) (domain.Advice, error)
}

// AdvisorService builds a context block from a situation plus recent
// journal entries, asks the text-generation service for advice and
// persists the result.
type AdvisorService struct {
	ai    completer
	store advisorStore
	model string
}

func NewAdvisorService(ai completer, store advisorStore, model string) *AdvisorService {
	return &AdvisorService{ai: ai, store: store, model: model}
}

// Generate returns advice text for the situation. On any failure it
// returns the fixed apology and persists nothing; the caller cannot tell
// the difference and is not meant to.
func (s *AdvisorService) Generate(ctx context.Context, situation domain.Situation) string {
	since := situation.CreatedAt.Add(-config.AdviceJournalWindow)
	entries, err := s.store.ListJournalSince(ctx, situation.UserID, since)
	if err != nil {
		slog.Error("load journal context", "error", err, "situation_id", situation.ID)
		entries = nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	advice, err := s.ai.Complete(reqCtx, s.model, advisorSystemPrompt,
		buildAdvicePrompt(situation, entries),
		config.AdviceTemperature, config.AdviceMaxTokens)
	if err != nil {
		slog.Error("generate advice", "error", err, "situation_id", situation.ID)
		return ApologyMessage
	}
	advice = strings.TrimSpace(advice)

	// A failed save is logged and swallowed: the advice is still shown,
	// the situation simply ends up with no advice record.
	if _, err := s.store.CreateAdvice(ctx, domain.Advice{
		ID:          uuid.New(),
		SituationID: situation.ID,
		Advice:      advice,
	}); err != nil {
		slog.Error("save advice", "error", err, "situation_id", situation.ID)
	}

	return advice
}

func buildAdvicePrompt(situation domain.Situation, entries []domain.JournalEntry) string {
	var journalContext strings.Builder
	for i, e := range entries {
		if i >= config.AdviceJournalExcerpts {
			break
		}
		fmt.Fprintf(&journalContext, "Recent Journal Entry (%s): %s\n",
			e.CreatedAt.Format("2006-01-02"), excerpt(e.Content))
	}

	return fmt.Sprintf(`Please analyze this personal situation and provide guidance:

Topic: %s
Situation: %s
Desired Outcome: %s
Current Emotions: %s
Mood Rating: %d/10

Recent Journal Context:
%s
Please provide:
1. Empathetic acknowledgment of the situation and emotions
2. Personal insights and potential root causes to consider
3. Specific, actionable steps for personal growth
4. Coping strategies and self-care suggestions
5. Reflection questions for deeper understanding
6. A positive affirmation or motivation for moving forward`,
		situation.Topic,
		situation.Description,
		situation.DesiredOutcome,
		strings.Join(situation.Emotions, ", "),
		situation.MoodRating,
		journalContext.String(),
	)
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) > config.AdviceExcerptMaxRunes {
		runes = runes[:config.AdviceExcerptMaxRunes]
	}
	return string(runes) + "..."
}
