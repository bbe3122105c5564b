package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alder-apps/growthbot/internal/domain"
)

func situationWith(topic string, emotions []string, resolved bool) domain.Situation {
	s := domain.Situation{
		Topic:      topic,
		Emotions:   emotions,
		MoodRating: 5,
		CreatedAt:  time.Now(),
	}
	if resolved {
		now := time.Now()
		s.ResolvedAt = &now
	}
	return s
}

func ratingsToEntries(ratings []int) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, len(ratings))
	for i := range ratings {
		r := ratings[i]
		entries[i] = domain.JournalEntry{Content: "entry", MoodRating: &r}
	}
	return entries
}

func TestCountFrequency(t *testing.T) {
	entries := CountFrequency([]string{"work", "health", "work", "family", "work", "health"})

	require.Len(t, entries, 3)
	assert.Equal(t, domain.FrequencyEntry{Name: "work", Count: 3}, entries[0])
	assert.Equal(t, domain.FrequencyEntry{Name: "health", Count: 2}, entries[1])
	assert.Equal(t, domain.FrequencyEntry{Name: "family", Count: 1}, entries[2])
}

func TestCountFrequencyTiesKeepEncounterOrder(t *testing.T) {
	entries := CountFrequency([]string{"b", "a", "b", "a", "c"})

	require.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].Name)
	assert.Equal(t, "a", entries[1].Name)
	assert.Equal(t, "c", entries[2].Name)
}

func TestCountFrequencyEmpty(t *testing.T) {
	assert.Empty(t, CountFrequency(nil))
}

func TestResolutionRate(t *testing.T) {
	t.Run("no situations", func(t *testing.T) {
		assert.True(t, ResolutionRate(nil).IsZero())
	})

	t.Run("half resolved", func(t *testing.T) {
		situations := []domain.Situation{
			situationWith("work", nil, true),
			situationWith("work", nil, false),
		}
		rate := ResolutionRate(situations)
		assert.True(t, rate.Equal(decimal.NewFromInt(50)), "got %s", rate)
	})

	t.Run("all resolved", func(t *testing.T) {
		situations := []domain.Situation{
			situationWith("work", nil, true),
			situationWith("health", nil, true),
			situationWith("family", nil, true),
		}
		rate := ResolutionRate(situations)
		assert.True(t, rate.Equal(decimal.NewFromInt(100)), "got %s", rate)
	})
}

func TestCalcMoodTrendEmpty(t *testing.T) {
	trend := CalcMoodTrend(nil)

	assert.Equal(t, "neutral", trend.Trend)
	assert.True(t, trend.Average.IsZero())
	assert.True(t, trend.Change.IsZero())
}

func TestCalcMoodTrendSingleRating(t *testing.T) {
	trend := CalcMoodTrend([]int{8})

	assert.Equal(t, "stable", trend.Trend)
	assert.True(t, trend.Average.Equal(decimal.NewFromInt(8)), "got %s", trend.Average)
	assert.True(t, trend.Change.IsZero())
}

func TestCalcMoodTrendImproving(t *testing.T) {
	// Newest first: seven 9s followed by seven 2s.
	ratings := []int{9, 9, 9, 9, 9, 9, 9, 2, 2, 2, 2, 2, 2, 2}
	trend := CalcMoodTrend(ratings)

	assert.Equal(t, "improving", trend.Trend)
	assert.True(t, trend.Change.Equal(decimal.NewFromInt(7)), "got %s", trend.Change)
	assert.True(t, trend.Average.Equal(decimal.NewFromFloat(5.5)), "got %s", trend.Average)
}

func TestCalcMoodTrendDeclining(t *testing.T) {
	ratings := []int{2, 2, 2, 2, 2, 2, 2, 9, 9, 9, 9, 9, 9, 9}
	trend := CalcMoodTrend(ratings)

	assert.Equal(t, "declining", trend.Trend)
	assert.True(t, trend.Change.Equal(decimal.NewFromInt(-7)), "got %s", trend.Change)
}

func TestCalcMoodTrendShortHistoryOverlaps(t *testing.T) {
	// With fewer than seven ratings the recent and older windows cover
	// the same values, so the change cancels out.
	trend := CalcMoodTrend([]int{9, 2, 5})

	assert.Equal(t, "stable", trend.Trend)
	assert.True(t, trend.Change.IsZero(), "got %s", trend.Change)
}

func TestCalcMoodTrendSmallChangeIsStable(t *testing.T) {
	ratings := []int{6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 5}
	trend := CalcMoodTrend(ratings)

	assert.Equal(t, "stable", trend.Trend)
}

func TestJournalConsistency(t *testing.T) {
	assert.True(t, JournalConsistency(0).IsZero())
	assert.True(t, JournalConsistency(60).Equal(decimal.NewFromInt(2)))
	assert.True(t, JournalConsistency(15).Equal(decimal.NewFromFloat(0.5)))
}

func TestGrowthAreasWatchedEmotions(t *testing.T) {
	situations := []domain.Situation{
		situationWith("a", []string{"Anxious"}, false),
		situationWith("b", []string{"Anxious", "Calm"}, false),
		situationWith("c", []string{"Anxious", "Calm"}, false),
		situationWith("d", []string{"Calm"}, false),
	}

	areas := GrowthAreas(situations)

	require.Len(t, areas, 1)
	assert.Equal(t, "Emotional Management: Anxious", areas[0].Area)
	assert.Equal(t, 3, areas[0].Frequency)
}

func TestGrowthAreasUnwatchedEmotionIgnored(t *testing.T) {
	// Calm recurs often but is not a watched emotion.
	situations := []domain.Situation{
		situationWith("a", []string{"Calm"}, false),
		situationWith("b", []string{"Calm"}, false),
		situationWith("c", []string{"Calm"}, false),
	}

	assert.Empty(t, GrowthAreas(situations))
}

func TestGrowthAreasRecurringTopics(t *testing.T) {
	situations := []domain.Situation{
		situationWith("work", []string{"Hopeful"}, false),
		situationWith("work", []string{"Motivated"}, false),
	}

	areas := GrowthAreas(situations)

	require.Len(t, areas, 1)
	assert.Equal(t, "Recurring Challenge: work", areas[0].Area)
	assert.Equal(t, 2, areas[0].Frequency)
}

func TestGrowthAreasEmotionsBeforeTopics(t *testing.T) {
	situations := []domain.Situation{
		situationWith("work", []string{"Frustrated"}, false),
		situationWith("work", []string{"Frustrated"}, false),
		situationWith("work", []string{"Frustrated"}, false),
	}

	areas := GrowthAreas(situations)

	require.Len(t, areas, 2)
	assert.Equal(t, "Emotional Management: Frustrated", areas[0].Area)
	assert.Equal(t, "Recurring Challenge: work", areas[1].Area)
}

func TestBuildReport(t *testing.T) {
	situations := []domain.Situation{
		situationWith("work", []string{"Anxious", "Frustrated"}, true),
		situationWith("work", []string{"Anxious"}, false),
	}
	entries := ratingsToEntries([]int{7, 5})
	entries = append(entries, domain.JournalEntry{Content: "no mood"})

	report := BuildReport(situations, entries)

	assert.Equal(t, 2, report.TotalSituations)
	assert.True(t, report.ResolutionRate.Equal(decimal.NewFromInt(50)), "got %s", report.ResolutionRate)
	require.NotEmpty(t, report.CommonTopics)
	assert.Equal(t, "work", report.CommonTopics[0].Name)
	assert.Equal(t, 2, report.CommonTopics[0].Count)
	require.NotEmpty(t, report.CommonEmotions)
	assert.Equal(t, "Anxious", report.CommonEmotions[0].Name)
	// Entries without a mood rating still count toward consistency but
	// stay out of the trend.
	assert.True(t, report.JournalConsistency.Equal(decimal.NewFromInt(3).Div(decimal.NewFromInt(30))))
	assert.True(t, report.MoodTrend.Average.Equal(decimal.NewFromInt(6)), "got %s", report.MoodTrend.Average)
	assert.True(t, report.HasData())
}

func TestBuildReportNoHistory(t *testing.T) {
	report := BuildReport(nil, nil)

	assert.False(t, report.HasData())
	assert.Equal(t, "neutral", report.MoodTrend.Trend)
	assert.True(t, report.ResolutionRate.IsZero())
}
