package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"

	"github.com/alder-apps/growthbot/internal/conversation"
	"github.com/alder-apps/growthbot/internal/domain"
	"github.com/alder-apps/growthbot/internal/middleware"
	"github.com/alder-apps/growthbot/internal/service"
	tg "github.com/alder-apps/growthbot/internal/telegram"
)

func (h *Handler) handleEmotionSelection(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, chatID, data, ok := h.callbackContext(ctx, b, update)
	if !ok {
		return
	}

	sess := h.sessions.Get(user.TelegramID)
	if !callbackAllowed(data, sess.State) {
		return
	}

	choice := strings.TrimPrefix(data, "emo_")

	if choice == "done" {
		if len(sess.Emotions) == 0 {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:      chatID,
				Text:        "Please select at least one emotion first.",
				ReplyMarkup: emotionsKeyboard(),
			})
			return
		}
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.State = conversation.RatingMood
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        fmt.Sprintf("Noted: %s.\n\nHow would you rate your mood right now?", strings.Join(sess.Emotions, ", ")),
			ReplyMarkup: moodKeyboard(),
		})
		return
	}

	if !conversation.IsValidEmotion(choice) {
		return
	}

	added := false
	h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
		added = s.AddEmotion(choice)
	})
	if added {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "Added: " + choice,
		})
	}
}

func (h *Handler) handleMoodRating(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, chatID, data, ok := h.callbackContext(ctx, b, update)
	if !ok {
		return
	}

	sess := h.sessions.Get(user.TelegramID)
	if !callbackAllowed(data, sess.State) {
		return
	}

	rating, err := strconv.Atoi(strings.TrimPrefix(data, "mood_"))
	if err != nil || rating < 1 || rating > 10 {
		return
	}

	switch {
	case sess.InSituationFlow():
		updated := h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.MoodRating = rating
			s.State = conversation.ConfirmingSituation
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        situationSummary(updated),
			ReplyMarkup: confirmationKeyboard(),
		})

	case sess.InJournalFlow():
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.MoodRating = rating
			s.State = conversation.TaggingEntry
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Would you like to tag this entry? Pick any that fit, then press Done.",
			ReplyMarkup: tagsKeyboard(),
		})

	default:
		// Daily reflection: mood first, then a prompted journal entry.
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.MoodRating = rating
			s.State = conversation.WritingJournal
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Thanks for checking in. 💙\n\n" + service.ReflectionPrompt(),
		})
	}
}

func (h *Handler) handleSituationConfirmation(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, chatID, data, ok := h.callbackContext(ctx, b, update)
	if !ok {
		return
	}

	sess := h.sessions.Get(user.TelegramID)
	if !callbackAllowed(data, sess.State) {
		return
	}

	if data == "confirm_no" {
		h.sessions.Reset(user.TelegramID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "No problem, I've discarded that. You can share again whenever you're ready.",
			ReplyMarkup: mainMenuKeyboard(),
		})
		return
	}
	if data != "confirm_yes" {
		return
	}

	if !sess.InSituationFlow() {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "That dialogue has expired. Please share your situation again.",
			ReplyMarkup: mainMenuKeyboard(),
		})
		return
	}

	situation, err := h.situationService.Create(ctx, user.ID,
		sess.Topic, sess.SituationText, sess.DesiredOutcome,
		sess.Emotions, sess.MoodRating)
	if err != nil {
		slog.Error("create situation", "error", err, "user_id", user.ID)
		h.sessions.Reset(user.TelegramID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "❌ Something went wrong saving your situation. Please try again.",
			ReplyMarkup: mainMenuKeyboard(),
		})
		return
	}

	h.deliverAdvice(ctx, b, chatID, user, *situation)
}

// deliverAdvice generates advice for the situation, shows it with the
// rating keyboard and parks the scratchpad in RatingAdvice.
func (h *Handler) deliverAdvice(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User, situation domain.Situation) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Let me think about this... 🤔",
	})

	advice := h.advisor.Generate(ctx, situation)

	h.sessions.Reset(user.TelegramID)
	h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
		s.State = conversation.RatingAdvice
		s.AdvisedSituationID = situation.ID
	})

	tg.SendLongMessage(ctx, b, chatID, advice, h.cfg.MaxMessageLength, adviceRatingKeyboard())
}

func (h *Handler) handleAdviceRating(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, chatID, data, ok := h.callbackContext(ctx, b, update)
	if !ok {
		return
	}

	sess := h.sessions.Get(user.TelegramID)
	if !callbackAllowed(data, sess.State) {
		return
	}

	var helpful bool
	switch data {
	case "rate_helpful":
		helpful = true
	case "rate_nothelpful":
		helpful = false
	default:
		return
	}

	situationID := sess.AdvisedSituationID
	if situationID == uuid.Nil {
		return
	}

	if err := h.adviceService.RecordFeedback(ctx, situationID, helpful); err != nil {
		if !errors.Is(err, domain.ErrAdviceNotFound) {
			slog.Error("record advice feedback", "error", err, "situation_id", situationID)
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "I couldn't record that rating, sorry.",
			ReplyMarkup: mainMenuKeyboard(),
		})
		return
	}

	h.sessions.Reset(user.TelegramID)

	text := "Thank you for the feedback! 🙏 I'm glad I could help."
	if !helpful {
		text = "Thank you for the feedback. 🙏 I'll keep working on giving better advice."
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: mainMenuKeyboard(),
	})
}

func situationSummary(sess *conversation.Session) string {
	return fmt.Sprintf(
		"Here's what I've got:\n\n"+
			"Topic: %s\n"+
			"Situation: %s\n"+
			"Desired outcome: %s\n"+
			"Emotions: %s\n"+
			"Mood: %d/10\n\n"+
			"Shall I save this and get you some advice?",
		sess.Topic,
		sess.SituationText,
		sess.DesiredOutcome,
		strings.Join(sess.Emotions, ", "),
		sess.MoodRating,
	)
}

// callbackContext answers the callback query and extracts the loaded user,
// chat id and callback data common to every callback handler.
func (h *Handler) callbackContext(ctx context.Context, b *bot.Bot, update *models.Update) (*domain.User, int64, string, bool) {
	if update.CallbackQuery == nil {
		return nil, 0, "", false
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	user := middleware.GetUser(ctx)
	if user == nil {
		return nil, 0, "", false
	}

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return nil, 0, "", false
	}

	return user, msg.Chat.ID, update.CallbackQuery.Data, true
}
