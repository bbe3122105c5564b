package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"

	"github.com/alder-apps/growthbot/internal/conversation"
	"github.com/alder-apps/growthbot/internal/domain"
)

// handleAdviceForSituation serves an on-demand advice request for one of
// the user's open situations.
func (h *Handler) handleAdviceForSituation(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, chatID, data, ok := h.callbackContext(ctx, b, update)
	if !ok {
		return
	}

	id, err := uuid.Parse(strings.TrimPrefix(data, "adv_"))
	if err != nil {
		return
	}

	situation, err := h.situationService.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSituationNotFound) {
			slog.Error("load situation for advice", "error", err, "situation_id", id)
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "I couldn't find that situation anymore, sorry.",
		})
		return
	}
	if situation.UserID != user.ID {
		return
	}

	h.deliverAdvice(ctx, b, chatID, user, *situation)
}

// handleResolveStart begins the resolution dialogue for an open situation
// picked from the past-situations listing.
func (h *Handler) handleResolveStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, chatID, data, ok := h.callbackContext(ctx, b, update)
	if !ok {
		return
	}

	id, err := uuid.Parse(strings.TrimPrefix(data, "resolve_"))
	if err != nil {
		return
	}

	situation, err := h.situationService.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSituationNotFound) {
			slog.Error("load situation for resolution", "error", err, "situation_id", id)
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "I couldn't find that situation anymore, sorry.",
		})
		return
	}
	if situation.UserID != user.ID {
		return
	}
	if situation.IsResolved() {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "That one is already resolved. ✅",
		})
		return
	}

	h.sessions.Reset(user.TelegramID)
	h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
		s.State = conversation.RecordingResolution
		s.ResolvingSituationID = situation.ID
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Great to hear! How did this situation resolve?",
	})
}
