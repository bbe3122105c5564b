package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken      string `env:"BOT_TOKEN,required"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	OpenRouterKey string `env:"OPENROUTER_API_KEY,required"`

	// Advice generation
	AdviceModel string `env:"ADVICE_MODEL" envDefault:"openai/gpt-4o"`

	// Retention limits
	MaxSituationsHistory int `env:"MAX_SITUATIONS_HISTORY" envDefault:"50"`
	MaxJournalEntries    int `env:"MAX_JOURNAL_ENTRIES" envDefault:"100"`

	// Message rendering
	MaxMessageLength int `env:"MAX_MESSAGE_LENGTH" envDefault:"4096"`

	// Daily reflection reminder, HH:MM
	DailyReflectionTime string `env:"DAILY_REFLECTION_TIME" envDefault:"21:00"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ReflectionClock parses DailyReflectionTime into hour and minute.
func (c *Config) ReflectionClock() (hour, minute int, err error) {
	parts := strings.SplitN(c.DailyReflectionTime, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid reflection time %q", c.DailyReflectionTime)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reflection hour: %w", err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reflection minute: %w", err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("reflection time out of range: %q", c.DailyReflectionTime)
	}
	return hour, minute, nil
}
