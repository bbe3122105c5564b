package domain

import "github.com/shopspring/decimal"

// FrequencyEntry is one row of a frequency table. Tables are ordered by
// count descending with ties kept in first-encounter order.
type FrequencyEntry struct {
	Name  string
	Count int
}

// MoodTrend classifies recent vs. older journal mood ratings.
type MoodTrend struct {
	Trend   string // improving, declining, stable, neutral
	Average decimal.Decimal
	Change  decimal.Decimal
}

// GrowthArea is a derived suggestion flagging a recurring emotional or
// topical pattern.
type GrowthArea struct {
	Area       string
	Frequency  int
	Suggestion string
}

// PatternReport aggregates a user's situation and journal history.
type PatternReport struct {
	CommonTopics       []FrequencyEntry
	CommonEmotions     []FrequencyEntry
	ResolutionRate     decimal.Decimal // percentage, 0 when no situations
	TotalSituations    int
	MoodTrend          MoodTrend
	JournalConsistency decimal.Decimal // total entries / 30
	GrowthAreas        []GrowthArea
}

// HasData reports whether there is any history behind the report.
func (r *PatternReport) HasData() bool {
	return r.TotalSituations > 0 || !r.JournalConsistency.IsZero() || r.MoodTrend.Trend != "neutral"
}
