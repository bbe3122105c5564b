package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/alder-apps/growthbot/internal/domain"
)

// Emotions that flag an emotional-management growth area when they recur.
var watchedEmotions = map[string]bool{
	"Anxious":     true,
	"Overwhelmed": true,
	"Frustrated":  true,
}

const (
	watchedEmotionThreshold = 3
	recurringTopicThreshold = 2
)

type historyStore interface {
	ListSituationsByUser(ctx context.Context, userID int64) ([]domain.Situation, error)
	ListJournalByUser(ctx context.Context, userID int64) ([]domain.JournalEntry, error)
}

// AnalyzerService derives a pattern report from a user's history. A store
// failure surfaces as an error; a user with no history yields a zero-valued
// report with a nil error, so the two cases are distinguishable.
type AnalyzerService struct {
	store historyStore
}

func NewAnalyzerService(store historyStore) *AnalyzerService {
	return &AnalyzerService{store: store}
}

func (s *AnalyzerService) Analyze(ctx context.Context, userID int64) (*domain.PatternReport, error) {
	situations, err := s.store.ListSituationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list situations: %w", err)
	}
	entries, err := s.store.ListJournalByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return BuildReport(situations, entries), nil
}

// BuildReport computes the aggregate over already time-ordered (newest
// first) situations and journal entries.
func BuildReport(situations []domain.Situation, entries []domain.JournalEntry) *domain.PatternReport {
	topics := make([]string, 0, len(situations))
	var emotions []string
	for _, s := range situations {
		topics = append(topics, s.Topic)
		emotions = append(emotions, s.Emotions...)
	}

	var ratings []int
	for _, e := range entries {
		if e.MoodRating != nil {
			ratings = append(ratings, *e.MoodRating)
		}
	}

	return &domain.PatternReport{
		CommonTopics:       CountFrequency(topics),
		CommonEmotions:     CountFrequency(emotions),
		ResolutionRate:     ResolutionRate(situations),
		TotalSituations:    len(situations),
		MoodTrend:          CalcMoodTrend(ratings),
		JournalConsistency: JournalConsistency(len(entries)),
		GrowthAreas:        GrowthAreas(situations),
	}
}

// CountFrequency builds a frequency table ordered by count descending.
// Ties keep first-encounter order.
func CountFrequency(items []string) []domain.FrequencyEntry {
	entries := countInOrder(items)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// countInOrder counts occurrences, keeping first-encounter order.
func countInOrder(items []string) []domain.FrequencyEntry {
	index := make(map[string]int, len(items))
	var entries []domain.FrequencyEntry
	for _, item := range items {
		if i, ok := index[item]; ok {
			entries[i].Count++
			continue
		}
		index[item] = len(entries)
		entries = append(entries, domain.FrequencyEntry{Name: item, Count: 1})
	}
	return entries
}

// ResolutionRate is the percentage of situations with a resolution
// timestamp. Zero when there are no situations.
func ResolutionRate(situations []domain.Situation) decimal.Decimal {
	if len(situations) == 0 {
		return decimal.Zero
	}
	resolved := 0
	for _, s := range situations {
		if s.IsResolved() {
			resolved++
		}
	}
	return decimal.NewFromInt(int64(resolved * 100)).
		Div(decimal.NewFromInt(int64(len(situations))))
}

// CalcMoodTrend compares the average of the most recent min(7, n) ratings
// with the average of the oldest min(7, n). Ratings arrive newest first;
// when n <= 7 the two windows overlap, which is intentional behavior.
func CalcMoodTrend(ratings []int) domain.MoodTrend {
	if len(ratings) == 0 {
		return domain.MoodTrend{Trend: "neutral", Average: decimal.Zero, Change: decimal.Zero}
	}

	average := mean(ratings).Round(2)

	change := decimal.Zero
	if len(ratings) >= 2 {
		window := len(ratings)
		if window > 7 {
			window = 7
		}
		recentAvg := mean(ratings[:window])
		olderAvg := mean(ratings[len(ratings)-window:])
		change = recentAvg.Sub(olderAvg).Round(2)
	}

	threshold := decimal.NewFromFloat(0.5)
	trend := "stable"
	switch {
	case change.GreaterThan(threshold):
		trend = "improving"
	case change.LessThan(threshold.Neg()):
		trend = "declining"
	}

	return domain.MoodTrend{Trend: trend, Average: average, Change: change}
}

// JournalConsistency is the total entry count divided by 30, an
// entries-per-month proxy over the full history.
func JournalConsistency(entryCount int) decimal.Decimal {
	if entryCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(entryCount)).Div(decimal.NewFromInt(30))
}

// GrowthAreas emits emotional-management suggestions for watched emotions
// occurring at least 3 times, then recurring-challenge suggestions for
// topics occurring at least twice. Both groups keep encounter order.
func GrowthAreas(situations []domain.Situation) []domain.GrowthArea {
	var emotions, topics []string
	for _, s := range situations {
		emotions = append(emotions, s.Emotions...)
		topics = append(topics, s.Topic)
	}

	var areas []domain.GrowthArea
	for _, e := range countInOrder(emotions) {
		if e.Count >= watchedEmotionThreshold && watchedEmotions[e.Name] {
			areas = append(areas, domain.GrowthArea{
				Area:       "Emotional Management: " + e.Name,
				Frequency:  e.Count,
				Suggestion: "Consider stress management techniques and emotional regulation strategies",
			})
		}
	}
	for _, t := range countInOrder(topics) {
		if t.Count >= recurringTopicThreshold {
			areas = append(areas, domain.GrowthArea{
				Area:       "Recurring Challenge: " + t.Name,
				Frequency:  t.Count,
				Suggestion: "This might be a core area for focused personal development",
			})
		}
	}
	return areas
}

func mean(ratings []int) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(ratings))))
}
