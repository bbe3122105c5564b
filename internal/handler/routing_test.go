package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alder-apps/growthbot/internal/conversation"
)

func TestCallbackAllowedMatchesState(t *testing.T) {
	assert.True(t, callbackAllowed("emo_Anxious", conversation.SelectingEmotions))
	assert.True(t, callbackAllowed("emo_done", conversation.SelectingEmotions))
	assert.True(t, callbackAllowed("mood_7", conversation.RatingMood))
	assert.True(t, callbackAllowed("confirm_yes", conversation.ConfirmingSituation))
	assert.True(t, callbackAllowed("rate_helpful", conversation.RatingAdvice))
	assert.True(t, callbackAllowed("tag_Gratitude", conversation.TaggingEntry))
	assert.True(t, callbackAllowed("tag_done", conversation.TaggingEntry))
}

func TestCallbackAllowedDropsStaleButtons(t *testing.T) {
	// A mood button on an old message must not start a journal entry for
	// a user idle at the menu.
	assert.False(t, callbackAllowed("mood_7", conversation.SelectingAction))

	// Nor may it skip a half-collected situation straight to confirmation.
	assert.False(t, callbackAllowed("mood_7", conversation.RecordingSituation))

	assert.False(t, callbackAllowed("emo_Anxious", conversation.SelectingAction))
	assert.False(t, callbackAllowed("emo_Anxious", conversation.RatingMood))
	assert.False(t, callbackAllowed("confirm_yes", conversation.SelectingAction))
	assert.False(t, callbackAllowed("rate_helpful", conversation.SelectingAction))
	assert.False(t, callbackAllowed("tag_Gratitude", conversation.WritingJournal))
}

func TestCallbackAllowedListingButtonsAnyState(t *testing.T) {
	// Advice and resolve buttons live on listing messages and stay valid.
	assert.True(t, callbackAllowed("adv_3f2a", conversation.SelectingAction))
	assert.True(t, callbackAllowed("adv_3f2a", conversation.WritingJournal))
	assert.True(t, callbackAllowed("resolve_3f2a", conversation.SelectingAction))
	assert.True(t, callbackAllowed("resolve_3f2a", conversation.RatingMood))
}
