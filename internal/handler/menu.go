package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/alder-apps/growthbot/internal/config"
	"github.com/alder-apps/growthbot/internal/conversation"
	"github.com/alder-apps/growthbot/internal/domain"
	tg "github.com/alder-apps/growthbot/internal/telegram"
)

// dispatchMenuAction starts the flow behind a main-menu selection. Flows
// begin on a fresh scratchpad so leftovers from an abandoned dialogue
// cannot leak in.
func (h *Handler) dispatchMenuAction(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User, action conversation.Action) {
	switch action {
	case conversation.ActionShareSituation:
		h.sessions.Reset(user.TelegramID)
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.State = conversation.RecordingTopic
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Let's work through this together. 💭\n\nFirst, what area of life does this concern? (e.g. work, relationships, health, personal goals)",
		})

	case conversation.ActionWriteJournal:
		h.sessions.Reset(user.TelegramID)
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.State = conversation.WritingJournal
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "I'm listening. 📝 Write whatever is on your mind.",
		})

	case conversation.ActionViewProgress:
		h.sendProgressReport(ctx, b, chatID, user)

	case conversation.ActionGetAdvice:
		h.sendOpenSituationChoices(ctx, b, chatID, user)

	case conversation.ActionPastSituations:
		h.sendPastSituations(ctx, b, chatID, user)

	case conversation.ActionDailyReflection:
		h.sessions.Reset(user.TelegramID)
		h.sessions.Update(user.TelegramID, func(s *conversation.Session) {
			s.State = conversation.RatingMood
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Time for a check-in. ✨\n\nFirst, how are you feeling right now?",
			ReplyMarkup: moodKeyboard(),
		})
	}
}

func (h *Handler) sendProgressReport(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User) {
	report, err := h.analyzer.Analyze(ctx, user.ID)
	if err != nil {
		slog.Error("analyze patterns", "error", err, "user_id", user.ID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ I couldn't build your report right now. Please try again later.",
		})
		return
	}

	if !report.HasData() {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "There's nothing to analyze yet. Share a situation or write a journal entry, and your patterns will show up here. 🌱",
		})
		return
	}

	tg.SendLongMessage(ctx, b, chatID, renderReport(report), h.cfg.MaxMessageLength, nil)
}

func renderReport(report *domain.PatternReport) string {
	var sb strings.Builder
	sb.WriteString("📊 Your Personal Growth Report\n\n")

	fmt.Fprintf(&sb, "Situations shared: %d\n", report.TotalSituations)
	fmt.Fprintf(&sb, "Resolution rate: %s%%\n", report.ResolutionRate.Round(1).String())
	fmt.Fprintf(&sb, "Journal consistency: %s entries/month\n\n", report.JournalConsistency.Round(1).String())

	if len(report.CommonTopics) > 0 {
		sb.WriteString("🔍 Most common topics:\n")
		for i, t := range report.CommonTopics {
			if i >= config.ReportTopEntries {
				break
			}
			fmt.Fprintf(&sb, "  • %s (%d times)\n", t.Name, t.Count)
		}
		sb.WriteString("\n")
	}

	if len(report.CommonEmotions) > 0 {
		sb.WriteString("💙 Most frequent emotions:\n")
		for i, e := range report.CommonEmotions {
			if i >= config.ReportTopEntries {
				break
			}
			fmt.Fprintf(&sb, "  • %s (%d times)\n", e.Name, e.Count)
		}
		sb.WriteString("\n")
	}

	trendEmoji := map[string]string{
		"improving": "📈",
		"declining": "📉",
		"stable":    "➡️",
		"neutral":   "➖",
	}
	fmt.Fprintf(&sb, "%s Mood trend: %s (average %s, change %s)\n\n",
		trendEmoji[report.MoodTrend.Trend],
		report.MoodTrend.Trend,
		report.MoodTrend.Average.String(),
		report.MoodTrend.Change.String(),
	)

	if len(report.GrowthAreas) > 0 {
		sb.WriteString("🌱 Growth areas to consider:\n")
		for _, area := range report.GrowthAreas {
			fmt.Fprintf(&sb, "  • %s (seen %d times)\n    %s\n", area.Area, area.Frequency, area.Suggestion)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// sendOpenSituationChoices offers the user's open situations as buttons for
// on-demand advice.
func (h *Handler) sendOpenSituationChoices(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User) {
	situations, err := h.situationService.ListOpen(ctx, user.ID, config.AdviceSituationChoices)
	if err != nil {
		slog.Error("list open situations", "error", err, "user_id", user.ID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ I couldn't load your situations right now. Please try again later.",
		})
		return
	}

	if len(situations) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "You have no open situations. Share one first and I'll gladly help. 💭",
		})
		return
	}

	var rows [][]models.InlineKeyboardButton
	for _, s := range situations {
		rows = append(rows, tg.ButtonRow(
			tg.InlineButton(situationLabel(s), "adv_"+s.ID.String()),
		))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Which situation would you like advice on? 🤖",
		ReplyMarkup: tg.InlineKeyboard(rows...),
	})
}

func (h *Handler) sendPastSituations(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User) {
	situations, err := h.situationService.ListRecent(ctx, user.ID, config.PastSituationsShown)
	if err != nil {
		slog.Error("list recent situations", "error", err, "user_id", user.ID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ I couldn't load your situations right now. Please try again later.",
		})
		return
	}

	if len(situations) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "No situations recorded yet. When you share one, it will show up here. 📚",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("📚 Your last %d situations:", len(situations)),
	})

	for _, s := range situations {
		text := formatSituation(s)

		var markup models.ReplyMarkup
		if !s.IsResolved() {
			markup = tg.InlineKeyboard(tg.ButtonRow(
				tg.InlineButton("Mark as Resolved ✔️", "resolve_"+s.ID.String()),
			))
		}

		if err := tg.SendLongMessage(ctx, b, chatID, text, h.cfg.MaxMessageLength, markup); err != nil {
			return
		}
	}
}

func formatSituation(s domain.Situation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 %s — %s\n", s.CreatedAt.Format("Jan 2, 2006"), s.Topic)
	fmt.Fprintf(&sb, "Situation: %s\n", s.Description)
	fmt.Fprintf(&sb, "Hoped for: %s\n", s.DesiredOutcome)
	fmt.Fprintf(&sb, "Emotions: %s\n", strings.Join(s.Emotions, ", "))
	fmt.Fprintf(&sb, "Mood: %d/10\n", s.MoodRating)

	if s.IsResolved() {
		sb.WriteString("Status: Resolved ✅\n")
		if s.Resolution != nil {
			fmt.Fprintf(&sb, "Resolution: %s\n", *s.Resolution)
		}
		if s.Reflection != nil {
			fmt.Fprintf(&sb, "Learned: %s\n", *s.Reflection)
		}
	} else {
		sb.WriteString("Status: Open ⏳\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// situationLabel fits a situation onto an inline button.
func situationLabel(s domain.Situation) string {
	label := fmt.Sprintf("%s: %s", s.Topic, s.Description)
	runes := []rune(label)
	if len(runes) > 40 {
		label = string(runes[:40]) + "…"
	}
	return label
}
