package handler

import (
	"strings"

	"github.com/go-telegram/bot"

	"github.com/alder-apps/growthbot/internal/conversation"
)

// Register registers all command and callback handlers on the bot instance.
// Free text is routed separately through HandleText via the default
// handler in main.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypePrefix, h.handleCancel)

	// Situation intake callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "emo_", bot.MatchTypePrefix, h.handleEmotionSelection)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "mood_", bot.MatchTypePrefix, h.handleMoodRating)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "confirm_", bot.MatchTypePrefix, h.handleSituationConfirmation)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "rate_", bot.MatchTypePrefix, h.handleAdviceRating)

	// Journal callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "tag_", bot.MatchTypePrefix, h.handleTagSelection)

	// Advice-on-demand and resolution callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "adv_", bot.MatchTypePrefix, h.handleAdviceForSituation)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "resolve_", bot.MatchTypePrefix, h.handleResolveStart)
}

// Each flow callback is only meaningful in one dialogue state. Buttons on
// stale messages stay tappable forever, so routing has to enforce this.
var callbackStates = []struct {
	prefix string
	state  conversation.State
}{
	{"emo_", conversation.SelectingEmotions},
	{"mood_", conversation.RatingMood},
	{"confirm_", conversation.ConfirmingSituation},
	{"rate_", conversation.RatingAdvice},
	{"tag_", conversation.TaggingEntry},
}

// callbackAllowed reports whether the callback may be consumed in the
// user's current state. Out-of-state callbacks are dropped without
// advancing the dialogue. The adv_ and resolve_ buttons live on listing
// messages and are valid from any state.
func callbackAllowed(data string, state conversation.State) bool {
	for _, cs := range callbackStates {
		if strings.HasPrefix(data, cs.prefix) {
			return state == cs.state
		}
	}
	return true
}
