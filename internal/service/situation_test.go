package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alder-apps/growthbot/internal/domain"
)

// fakeSituationStore records delete calls in order; the rest of the
// contract is unused by the tests here.
type fakeSituationStore struct {
	calls             []string
	deletedAdviceFor  []uuid.UUID
	deletedSituations []uuid.UUID
}

func (f *fakeSituationStore) CreateSituation(_ context.Context, s domain.Situation) (domain.Situation, error) {
	return s, nil
}

func (f *fakeSituationStore) GetSituationByID(_ context.Context, _ uuid.UUID) (domain.Situation, error) {
	return domain.Situation{}, nil
}

func (f *fakeSituationStore) ListRecentSituationsByUser(_ context.Context, _ int64, _ int) ([]domain.Situation, error) {
	return nil, nil
}

func (f *fakeSituationStore) ListOpenSituationsByUser(_ context.Context, _ int64, _ int) ([]domain.Situation, error) {
	return nil, nil
}

func (f *fakeSituationStore) LatestSituationByUser(_ context.Context, _ int64) (domain.Situation, error) {
	return domain.Situation{}, nil
}

func (f *fakeSituationStore) ResolveSituation(_ context.Context, _ uuid.UUID, _, _ string, _ time.Time) error {
	return nil
}

func (f *fakeSituationStore) DeleteAdviceBySituationIDs(_ context.Context, ids []uuid.UUID) error {
	f.calls = append(f.calls, "delete_advice")
	f.deletedAdviceFor = append(f.deletedAdviceFor, ids...)
	return nil
}

func (f *fakeSituationStore) DeleteSituationsByIDs(_ context.Context, ids []uuid.UUID) error {
	f.calls = append(f.calls, "delete_situations")
	f.deletedSituations = append(f.deletedSituations, ids...)
	return nil
}

func TestSituationCreateValidation(t *testing.T) {
	svc := NewSituationService(nil)

	_, err := svc.Create(context.Background(), 1, "work", "desc", "outcome", []string{"Anxious"}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidMoodRating)

	_, err = svc.Create(context.Background(), 1, "work", "desc", "outcome", []string{"Anxious"}, 11)
	assert.ErrorIs(t, err, domain.ErrInvalidMoodRating)

	_, err = svc.Create(context.Background(), 1, "work", "desc", "outcome", nil, 5)
	assert.ErrorIs(t, err, domain.ErrNoEmotions)
}

func TestDeleteCascadesAdvice(t *testing.T) {
	store := &fakeSituationStore{}
	svc := NewSituationService(store)
	id := uuid.New()

	require.NoError(t, svc.Delete(context.Background(), id))

	assert.Equal(t, []string{"delete_advice", "delete_situations"}, store.calls,
		"advice rows must go before their situation")
	assert.Equal(t, []uuid.UUID{id}, store.deletedAdviceFor)
	assert.Equal(t, []uuid.UUID{id}, store.deletedSituations)
}

func TestJournalCreateValidation(t *testing.T) {
	svc := NewJournalService(nil)

	_, err := svc.Create(context.Background(), 1, "content", -3, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidMoodRating)

	_, err = svc.Create(context.Background(), 1, "content", 11, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidMoodRating)
}
