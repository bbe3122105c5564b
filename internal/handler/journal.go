package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/alder-apps/growthbot/internal/conversation"
)

func (h *Handler) handleTagSelection(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, chatID, data, ok := h.callbackContext(ctx, b, update)
	if !ok {
		return
	}

	sess := h.sessions.Get(user.TelegramID)
	if !callbackAllowed(data, sess.State) {
		return
	}

	choice := strings.TrimPrefix(data, "tag_")

	if choice == "done" {
		if sess.JournalContent == "" {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:      chatID,
				Text:        "That dialogue has expired. Please write your entry again.",
				ReplyMarkup: mainMenuKeyboard(),
			})
			return
		}

		if _, err := h.journalService.Create(ctx, user.ID, sess.JournalContent, sess.MoodRating, sess.Tags); err != nil {
			slog.Error("create journal entry", "error", err, "user_id", user.ID)
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "❌ Something went wrong saving your entry. Please try again.",
			})
			return
		}

		h.sessions.Reset(user.TelegramID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Your entry is saved. 📝 Regular journaling is one of the best habits for self-awareness, keep it up!",
			ReplyMarkup: mainMenuKeyboard(),
		})
		return
	}

	if !conversation.IsValidTag(choice) {
		return
	}

	added := false
	h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
		added = s.AddTag(choice)
	})
	if added {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "Tagged: " + choice,
		})
	}
}
