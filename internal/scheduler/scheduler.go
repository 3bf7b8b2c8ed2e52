// Package scheduler resumes seat-release checks whose grace period has
// elapsed. Timers live in Postgres, so any instance can pick up a wait
// started by another one.
package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cinema/internal/entities"
)

type TimersRepo interface {
	Due(ctx context.Context, now time.Time, limit int) ([]entities.ReleaseTimer, error)
	Delete(ctx context.Context, bookingID uuid.UUID) error
}

type EventBus interface {
	Publish(ctx context.Context, event any) error
}

type Scheduler struct {
	timersRepo   TimersRepo
	eventBus     EventBus
	pollInterval time.Duration
	batchSize    int
	logger       zerolog.Logger
}

func NewScheduler(
	timersRepo TimersRepo,
	eventBus EventBus,
	pollInterval time.Duration,
	logger zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		timersRepo:   timersRepo,
		eventBus:     eventBus,
		pollInterval: pollInterval,
		batchSize:    100,
		logger:       logger,
	}
}

func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.FireDue(ctx); err != nil {
				s.logger.Err(err).Msg("failed to fire due release timers")
			}
		}
	}
}

// FireDue publishes a SeatReleaseDue_v1 for every expired timer and
// removes the timer once the publish succeeded. A crash in between
// re-fires the event on the next scan; the release check downstream is
// idempotent, so duplicates are harmless.
func (s *Scheduler) FireDue(ctx context.Context) error {
	timers, err := s.timersRepo.Due(ctx, time.Now().UTC(), s.batchSize)
	if err != nil {
		return err
	}

	for _, timer := range timers {
		err := s.eventBus.Publish(ctx, entities.SeatReleaseDue_v1{
			Header:      entities.NewEventHeaderWithIdempotencyKey("seat-release." + timer.BookingID.String()),
			BookingID:   timer.BookingID,
			ScheduledAt: timer.FireAt,
		})
		if err != nil {
			s.logger.Err(err).
				Str("booking_id", timer.BookingID.String()).
				Msg("failed to publish release due event")
			continue
		}

		if err := s.timersRepo.Delete(ctx, timer.BookingID); err != nil {
			s.logger.Err(err).
				Str("booking_id", timer.BookingID.String()).
				Msg("failed to delete fired release timer")
		}
	}

	return nil
}
