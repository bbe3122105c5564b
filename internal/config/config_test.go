package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectionClock(t *testing.T) {
	cfg := &Config{DailyReflectionTime: "21:00"}

	hour, minute, err := cfg.ReflectionClock()

	require.NoError(t, err)
	assert.Equal(t, 21, hour)
	assert.Equal(t, 0, minute)
}

func TestReflectionClockInvalid(t *testing.T) {
	for _, value := range []string{"", "21", "24:00", "12:60", "ab:cd", "-1:30"} {
		cfg := &Config{DailyReflectionTime: value}
		_, _, err := cfg.ReflectionClock()
		assert.Error(t, err, "value %q", value)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/growthbot")
	t.Setenv("OPENROUTER_API_KEY", "key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o", cfg.AdviceModel)
	assert.Equal(t, 50, cfg.MaxSituationsHistory)
	assert.Equal(t, 100, cfg.MaxJournalEntries)
	assert.Equal(t, 4096, cfg.MaxMessageLength)
	assert.Equal(t, "21:00", cfg.DailyReflectionTime)
	assert.False(t, cfg.DropPendingUpdates)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/growthbot")
	t.Setenv("OPENROUTER_API_KEY", "key")
	t.Setenv("ADVICE_MODEL", "anthropic/claude-3.5-sonnet")
	t.Setenv("MAX_SITUATIONS_HISTORY", "10")
	t.Setenv("DAILY_REFLECTION_TIME", "08:30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", cfg.AdviceModel)
	assert.Equal(t, 10, cfg.MaxSituationsHistory)

	hour, minute, err := cfg.ReflectionClock()
	require.NoError(t, err)
	assert.Equal(t, 8, hour)
	assert.Equal(t, 30, minute)
}
