package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/alder-apps/growthbot/internal/conversation"
	"github.com/alder-apps/growthbot/internal/middleware"
)

// HandleText routes free-form text by the user's dialogue state. It is
// registered as the bot's default handler, so commands and callbacks never
// reach it.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)
	if text == "" {
		return
	}

	sess := h.sessions.Get(user.TelegramID)

	switch sess.State {
	case conversation.SelectingAction:
		action := actionForLabel(text)
		if action == conversation.ActionUnknown {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:      chatID,
				Text:        "Please pick one of the options below 👇",
				ReplyMarkup: mainMenuKeyboard(),
			})
			return
		}
		h.dispatchMenuAction(ctx, b, chatID, user, action)

	case conversation.RecordingTopic:
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.Topic = text
			s.State = conversation.RecordingSituation
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Got it. Now describe what's going on. What happened, and what makes it difficult?",
		})

	case conversation.RecordingSituation:
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.SituationText = text
			s.State = conversation.RecordingDesiredOutcome
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Thank you for sharing. What outcome would you like to see? How would things look if this were resolved?",
		})

	case conversation.RecordingDesiredOutcome:
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.DesiredOutcome = text
			s.State = conversation.SelectingEmotions
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "How are you feeling about this? Select all that apply, then press Done.",
			ReplyMarkup: emotionsKeyboard(),
		})

	case conversation.WritingJournal:
		// The daily-reflection flow collects the mood before the text, so
		// a mood already on the scratchpad means tags come next.
		moodSet := sess.MoodRating != 0
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.JournalContent = text
			if moodSet {
				s.State = conversation.TaggingEntry
			} else {
				s.State = conversation.RatingMood
			}
		})
		if moodSet {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:      chatID,
				Text:        "Would you like to tag this entry? Pick any that fit, then press Done.",
				ReplyMarkup: tagsKeyboard(),
			})
			return
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "How would you rate your mood right now?",
			ReplyMarkup: moodKeyboard(),
		})

	case conversation.RecordingResolution:
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.ResolutionText = text
			s.State = conversation.WritingReflection
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "That's great progress! 🎉 What did you learn from working through this?",
		})

	case conversation.WritingReflection:
		if err := h.situationService.Resolve(ctx, sess.ResolvingSituationID, sess.ResolutionText, text); err != nil {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "❌ Something went wrong saving that. Please try again later.",
			})
			return
		}
		h.sessions.Reset(user.TelegramID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Wonderful! I've marked that situation as resolved. Every challenge you work through makes you stronger. 💪",
			ReplyMarkup: mainMenuKeyboard(),
		})

	default:
		// States that expect a button press, not text.
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Please use the buttons above, or /cancel to start over.",
		})
	}
}
