package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"

	growthbot "github.com/alder-apps/growthbot"
	"github.com/alder-apps/growthbot/internal/config"
	"github.com/alder-apps/growthbot/internal/conversation"
	"github.com/alder-apps/growthbot/internal/handler"
	"github.com/alder-apps/growthbot/internal/middleware"
	"github.com/alder-apps/growthbot/internal/repository"
	"github.com/alder-apps/growthbot/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local development convenience; production uses real env vars
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	reflectionHour, reflectionMinute, reflectionErr := cfg.ReflectionClock()
	if reflectionErr != nil {
		slog.Warn("invalid reflection time, daily reflections disabled", "error", reflectionErr)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(growthbot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	queries := repository.New(pool)

	// Initialize services
	userService := service.NewUserService(queries)
	situationService := service.NewSituationService(queries)
	journalService := service.NewJournalService(queries)
	adviceService := service.NewAdviceService(queries)
	openRouter := service.NewOpenRouterService(cfg.OpenRouterKey)
	advisor := service.NewAdvisorService(openRouter, queries, cfg.AdviceModel)
	analyzer := service.NewAnalyzerService(queries)
	retention := service.NewRetentionService(queries, cfg.MaxSituationsHistory, cfg.MaxJournalEntries)

	sessions := conversation.NewStore(config.SessionTTL, config.SessionCleanupInterval)

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.UserLoader(userService),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleText(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DropPendingUpdates {
		b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true})
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:              b,
		Cfg:              cfg,
		Sessions:         sessions,
		UserService:      userService,
		SituationService: situationService,
		JournalService:   journalService,
		AdviceService:    adviceService,
		Advisor:          advisor,
		Analyzer:         analyzer,
	})

	// Register all handlers
	h.Register()

	// Start retention cleanup goroutine
	go func() {
		ticker := time.NewTicker(config.RetentionInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := retention.Cleanup(context.Background()); err != nil {
					slog.Error("retention cleanup", "error", err)
				}
			}
		}
	}()

	// Start daily reflection broadcast goroutine
	if reflectionErr == nil {
		go func() {
			for {
				next := service.NextReflection(time.Now(), reflectionHour, reflectionMinute)
				timer := time.NewTimer(time.Until(next))
				select {
				case <-ctx.Done():
					timer.Stop()
					return
				case <-timer.C:
					broadcastReflection(ctx, b, userService, sessions)
				}
			}
		}()
	}

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}

// broadcastReflection sends the daily reflection prompt to every known
// user. Users idle at the main menu are moved into the journal flow so a
// plain text reply becomes an entry.
func broadcastReflection(ctx context.Context, b *bot.Bot, userService *service.UserService, sessions *conversation.Store) {
	users, err := userService.ListAll(ctx)
	if err != nil {
		slog.Error("list users for reflection", "error", err)
		return
	}

	prompt := service.ReflectionPrompt()
	sent := 0
	for _, u := range users {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: u.TelegramID,
			Text:   "✨ Time for your daily reflection!\n\n" + prompt,
		})
		if err != nil {
			// Blocked bots and deleted accounts are expected here.
			slog.Warn("send reflection", "error", err, "telegram_id", u.TelegramID)
			continue
		}
		sessions.Update(u.TelegramID, func(s *conversation.Session) {
			if s.State == conversation.SelectingAction {
				s.State = conversation.WritingJournal
			}
		})
		sent++
	}

	slog.Info("daily reflection broadcast", "users", len(users), "sent", sent)
}
