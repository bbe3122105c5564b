package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddEmotionDeduplicates(t *testing.T) {
	sess := NewSession(1)

	assert.True(t, sess.AddEmotion("Anxious"))
	assert.False(t, sess.AddEmotion("Anxious"))
	assert.True(t, sess.AddEmotion("Calm"))

	assert.Equal(t, []string{"Anxious", "Calm"}, sess.Emotions)
}

func TestAddTagDeduplicates(t *testing.T) {
	sess := NewSession(1)

	assert.True(t, sess.AddTag("Gratitude"))
	assert.False(t, sess.AddTag("Gratitude"))

	assert.Equal(t, []string{"Gratitude"}, sess.Tags)
}

func TestFlowDisambiguation(t *testing.T) {
	sess := NewSession(1)
	assert.False(t, sess.InSituationFlow())
	assert.False(t, sess.InJournalFlow())

	sess.Topic = "work"
	assert.True(t, sess.InSituationFlow())
	assert.False(t, sess.InJournalFlow())

	other := NewSession(2)
	other.JournalContent = "today was fine"
	assert.True(t, other.InJournalFlow())
	assert.False(t, other.InSituationFlow())
}

func TestNewSessionStartsAtMenu(t *testing.T) {
	sess := NewSession(42)

	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, SelectingAction, sess.State)
	assert.Empty(t, sess.Emotions)
}
