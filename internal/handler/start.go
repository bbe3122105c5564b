package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/alder-apps/growthbot/internal/middleware"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.sessions.Reset(user.TelegramID)

	var text string
	if middleware.IsNewUser(ctx) {
		text = fmt.Sprintf(
			"👋 Welcome, *%s*!\n\n"+
				"I'm your personal growth companion. I can help you:\n\n"+
				"💭 Work through difficult situations\n"+
				"📝 Keep a reflective journal\n"+
				"📊 Spot patterns in your emotional life\n"+
				"🤖 Get AI-powered guidance\n\n"+
				"Pick an option below to get started!",
			user.FirstName,
		)
	} else {
		text = fmt.Sprintf(
			"Welcome back, *%s*! 🌱\n\nWhat would you like to do today?",
			user.FirstName,
		)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: mainMenuKeyboard(),
	})
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "🌱 *Personal Growth Bot*\n\n" +
		"*Menu options:*\n" +
		"💭 Share a Situation — describe a challenge and get AI advice\n" +
		"📝 Write in Journal — record a reflection with mood and tags\n" +
		"📊 View Progress — see patterns in your history\n" +
		"🤖 Get AI Advice — revisit an open situation\n" +
		"📚 Past Situations — review and resolve situations\n" +
		"✨ Daily Reflection — a guided check-in\n\n" +
		"*Commands:*\n" +
		"/start — show the main menu\n" +
		"/cancel — abandon the current dialogue\n" +
		"/help — this message"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: mainMenuKeyboard(),
	})
}

// handleCancel discards the in-progress dialogue. Nothing collected so far
// is persisted.
func (h *Handler) handleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	h.sessions.Reset(user.TelegramID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Okay, I've cancelled that. What would you like to do instead?",
		ReplyMarkup: mainMenuKeyboard(),
	})
}
