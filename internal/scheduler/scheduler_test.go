package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema/internal/entities"
	"cinema/internal/scheduler"
)

type fakeTimersRepo struct {
	due     []entities.ReleaseTimer
	dueErr  error
	deleted []uuid.UUID
}

func (f *fakeTimersRepo) Due(_ context.Context, _ time.Time, _ int) ([]entities.ReleaseTimer, error) {
	return f.due, f.dueErr
}

func (f *fakeTimersRepo) Delete(_ context.Context, bookingID uuid.UUID) error {
	f.deleted = append(f.deleted, bookingID)
	return nil
}

type fakeEventBus struct {
	published []any
	err       error
}

func (f *fakeEventBus) Publish(_ context.Context, event any) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
	return nil
}

func TestFireDue_PublishesAndDeletesTimers(t *testing.T) {
	bookingID1 := uuid.New()
	bookingID2 := uuid.New()
	fireAt := time.Now().UTC().Add(-time.Minute)

	timersRepo := &fakeTimersRepo{
		due: []entities.ReleaseTimer{
			{BookingID: bookingID1, FireAt: fireAt},
			{BookingID: bookingID2, FireAt: fireAt},
		},
	}
	eventBus := &fakeEventBus{}

	s := scheduler.NewScheduler(timersRepo, eventBus, time.Second, zerolog.Nop())

	err := s.FireDue(context.Background())
	require.NoError(t, err)

	require.Len(t, eventBus.published, 2)

	event, ok := eventBus.published[0].(entities.SeatReleaseDue_v1)
	require.True(t, ok)
	assert.Equal(t, bookingID1, event.BookingID)
	assert.Equal(t, fireAt, event.ScheduledAt)
	assert.Equal(t, "seat-release."+bookingID1.String(), event.Header.IdempotencyKey)

	assert.Equal(t, []uuid.UUID{bookingID1, bookingID2}, timersRepo.deleted)
}

func TestFireDue_KeepsTimerWhenPublishFails(t *testing.T) {
	timersRepo := &fakeTimersRepo{
		due: []entities.ReleaseTimer{
			{BookingID: uuid.New(), FireAt: time.Now().UTC()},
		},
	}
	eventBus := &fakeEventBus{err: errors.New("redis unavailable")}

	s := scheduler.NewScheduler(timersRepo, eventBus, time.Second, zerolog.Nop())

	err := s.FireDue(context.Background())
	require.NoError(t, err)

	// the timer survives and is retried on the next scan
	assert.Empty(t, timersRepo.deleted)
}

func TestFireDue_PropagatesDueError(t *testing.T) {
	timersRepo := &fakeTimersRepo{dueErr: errors.New("db down")}

	s := scheduler.NewScheduler(timersRepo, &fakeEventBus{}, time.Second, zerolog.Nop())

	err := s.FireDue(context.Background())
	require.Error(t, err)
}

func TestFireDue_NothingDue(t *testing.T) {
	timersRepo := &fakeTimersRepo{}
	eventBus := &fakeEventBus{}

	s := scheduler.NewScheduler(timersRepo, eventBus, time.Second, zerolog.Nop())

	require.NoError(t, s.FireDue(context.Background()))
	assert.Empty(t, eventBus.published)
}
