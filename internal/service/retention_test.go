package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRetentionStore holds ids newest first, mirroring the query layer's
// ordering, and records every delete call in order.
type fakeRetentionStore struct {
	situationIDs []uuid.UUID
	journalIDs   []uuid.UUID

	calls             []string
	deletedAdviceFor  []uuid.UUID
	deletedSituations []uuid.UUID
	deletedEntries    []uuid.UUID
}

func (f *fakeRetentionStore) ListSituationIDsBeyondNewest(_ context.Context, keep int) ([]uuid.UUID, error) {
	if keep >= len(f.situationIDs) {
		return nil, nil
	}
	return f.situationIDs[keep:], nil
}

func (f *fakeRetentionStore) DeleteAdviceBySituationIDs(_ context.Context, ids []uuid.UUID) error {
	f.calls = append(f.calls, "delete_advice")
	f.deletedAdviceFor = append(f.deletedAdviceFor, ids...)
	return nil
}

func (f *fakeRetentionStore) DeleteSituationsByIDs(_ context.Context, ids []uuid.UUID) error {
	f.calls = append(f.calls, "delete_situations")
	f.deletedSituations = append(f.deletedSituations, ids...)
	return nil
}

func (f *fakeRetentionStore) ListJournalIDsBeyondNewest(_ context.Context, keep int) ([]uuid.UUID, error) {
	if keep >= len(f.journalIDs) {
		return nil, nil
	}
	return f.journalIDs[keep:], nil
}

func (f *fakeRetentionStore) DeleteJournalEntriesByIDs(_ context.Context, ids []uuid.UUID) error {
	f.calls = append(f.calls, "delete_entries")
	f.deletedEntries = append(f.deletedEntries, ids...)
	return nil
}

func newIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestCleanupTrimsOldestBeyondLimit(t *testing.T) {
	store := &fakeRetentionStore{situationIDs: newIDs(60)}
	svc := NewRetentionService(store, 50, 100)

	require.NoError(t, svc.Cleanup(context.Background()))

	// Exactly the 10 oldest go, the newest 50 stay.
	require.Len(t, store.deletedSituations, 10)
	assert.Equal(t, store.situationIDs[50:], store.deletedSituations)
	assert.Equal(t, store.deletedSituations, store.deletedAdviceFor,
		"advice must be deleted for exactly the trimmed situations")
}

func TestCleanupDeletesAdviceBeforeSituations(t *testing.T) {
	store := &fakeRetentionStore{situationIDs: newIDs(3)}
	svc := NewRetentionService(store, 1, 100)

	require.NoError(t, svc.Cleanup(context.Background()))

	assert.Equal(t, []string{"delete_advice", "delete_situations"}, store.calls)
}

func TestCleanupUnderLimitDeletesNothing(t *testing.T) {
	store := &fakeRetentionStore{
		situationIDs: newIDs(40),
		journalIDs:   newIDs(80),
	}
	svc := NewRetentionService(store, 50, 100)

	require.NoError(t, svc.Cleanup(context.Background()))

	assert.Empty(t, store.calls)
}

func TestCleanupTrimsJournal(t *testing.T) {
	store := &fakeRetentionStore{journalIDs: newIDs(105)}
	svc := NewRetentionService(store, 50, 100)

	require.NoError(t, svc.Cleanup(context.Background()))

	require.Len(t, store.deletedEntries, 5)
	assert.Equal(t, store.journalIDs[100:], store.deletedEntries)
	assert.Empty(t, store.deletedSituations)
}
