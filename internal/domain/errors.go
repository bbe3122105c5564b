package domain

import "errors"

var (
	ErrSituationNotFound = errors.New("situation not found")
	ErrAdviceNotFound    = errors.New("advice not found")
	ErrNoEmotions        = errors.New("at least one emotion required")
	ErrInvalidMoodRating = errors.New("mood rating must be between 1 and 10")
)
