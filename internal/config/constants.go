package config

import "time"

const (
	// AI request timeout
	RequestTimeout = 90 * time.Second

	// Advice generation parameters
	AdviceTemperature = 0.7
	AdviceMaxTokens   = 800

	// Journal look-back window for advice context
	AdviceJournalWindow = 7 * 24 * time.Hour

	// Journal excerpts included in the advice prompt
	AdviceJournalExcerpts = 3
	AdviceExcerptMaxRunes = 200

	// Open situations offered for advice, and recent situations listed
	AdviceSituationChoices = 5
	PastSituationsShown    = 5

	// Top rows rendered per frequency table in the progress report
	ReportTopEntries = 3

	// Transient dialogue scratchpad lifetime
	SessionTTL             = 1 * time.Hour
	SessionCleanupInterval = 10 * time.Minute

	// Retention cleanup interval
	RetentionInterval = 1 * time.Hour
)
