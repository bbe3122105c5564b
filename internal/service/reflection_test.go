package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextReflectionLaterToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	next := NextReflection(now, 21, 0)

	assert.Equal(t, time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC), next)
}

func TestNextReflectionRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 31, 22, 30, 0, 0, time.UTC)

	next := NextReflection(now, 21, 0)

	assert.Equal(t, time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC), next)
}

func TestNextReflectionExactTimeRollsOver(t *testing.T) {
	now := time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC)

	next := NextReflection(now, 21, 0)

	assert.True(t, next.After(now))
	assert.Equal(t, time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC), next)
}

func TestReflectionPromptNonEmpty(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.NotEmpty(t, ReflectionPrompt())
	}
}
