package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(time.Minute, time.Minute)
}

func TestStoreGetCreatesFreshSession(t *testing.T) {
	store := newTestStore()

	sess := store.Get(7)

	require.NotNil(t, sess)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, SelectingAction, sess.State)
}

func TestStoreGetReturnsSameSession(t *testing.T) {
	store := newTestStore()

	first := store.Get(7)
	first.Topic = "work"

	second := store.Get(7)
	assert.Equal(t, "work", second.Topic)
}

func TestStoreUpdateMutatesAndStamps(t *testing.T) {
	store := newTestStore()
	before := time.Now()

	sess := store.Update(7, func(s *Session) {
		s.State = RecordingTopic
	})

	assert.Equal(t, RecordingTopic, sess.State)
	assert.False(t, sess.UpdatedAt.Before(before))
	assert.Equal(t, RecordingTopic, store.Get(7).State)
}

func TestStoreResetDiscardsProgress(t *testing.T) {
	store := newTestStore()
	store.Update(7, func(s *Session) {
		s.State = SelectingEmotions
		s.Topic = "work"
		s.Emotions = []string{"Anxious"}
	})

	sess := store.Reset(7)

	assert.Equal(t, SelectingAction, sess.State)
	assert.Empty(t, sess.Topic)
	assert.Empty(t, sess.Emotions)
}

func TestStoreDeleteEvicts(t *testing.T) {
	store := newTestStore()
	store.Update(7, func(s *Session) { s.Topic = "work" })

	store.Delete(7)

	assert.Empty(t, store.Get(7).Topic)
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	store := newTestStore()
	store.Update(1, func(s *Session) { s.Topic = "one" })
	store.Update(2, func(s *Session) { s.Topic = "two" })

	assert.Equal(t, "one", store.Get(1).Topic)
	assert.Equal(t, "two", store.Get(2).Topic)
}
