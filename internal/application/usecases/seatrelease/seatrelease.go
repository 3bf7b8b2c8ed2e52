package seatrelease

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/google/uuid"

	"cinema/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_bookings_repo.go -package=mocks cinema/internal/application/usecases/seatrelease BookingsRepo
type BookingsRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

//go:generate mockgen -destination=mocks/mock_shows_repo.go -package=mocks cinema/internal/application/usecases/seatrelease ShowsRepo
type ShowsRepo interface {
	RemoveOccupiedSeats(ctx context.Context, showID uuid.UUID, seats []string) error
}

//go:generate mockgen -destination=mocks/mock_timers_repo.go -package=mocks cinema/internal/application/usecases/seatrelease TimersRepo
type TimersRepo interface {
	Schedule(ctx context.Context, bookingID uuid.UUID, fireAt time.Time) error
}

// ReleaseSeatsUsecase is the compensation for seat holds: when a
// booking's grace period elapses without payment, its seats go back to
// the show and the booking is removed.
type ReleaseSeatsUsecase struct {
	bookingsRepo BookingsRepo
	showsRepo    ShowsRepo
	timersRepo   TimersRepo
	trManager    trm.Manager
	gracePeriod  time.Duration
}

func NewReleaseSeatsUsecase(
	bookingsRepo BookingsRepo,
	showsRepo ShowsRepo,
	timersRepo TimersRepo,
	trManager trm.Manager,
	gracePeriod time.Duration,
) *ReleaseSeatsUsecase {
	return &ReleaseSeatsUsecase{
		bookingsRepo: bookingsRepo,
		showsRepo:    showsRepo,
		timersRepo:   timersRepo,
		trManager:    trManager,
		gracePeriod:  gracePeriod,
	}
}

// SchedulePaymentCheck persists the booking's release deadline. The
// deadline is computed when the payment-pending event arrives, so a
// delayed delivery shortens the remaining wait, not the hold itself.
func (s *ReleaseSeatsUsecase) SchedulePaymentCheck(ctx context.Context, bookingID uuid.UUID) (time.Time, error) {
	fireAt := time.Now().UTC().Add(s.gracePeriod)

	if err := s.timersRepo.Schedule(ctx, bookingID, fireAt); err != nil {
		return time.Time{}, fmt.Errorf("failed to schedule payment check: %w", err)
	}

	log.FromContext(ctx).Info("Scheduled payment check for booking ", bookingID, " at ", fireAt)
	return fireAt, nil
}

// ReleaseIfUnpaid runs the deadline check. It is safe to re-run for
// the same booking: a booking that is already paid, or already
// released, is a no-op.
func (s *ReleaseSeatsUsecase) ReleaseIfUnpaid(ctx context.Context, bookingID uuid.UUID) error {
	return s.trManager.DoWithSettings(
		ctx,
		trmsql.MustSettings(
			settings.Must(settings.WithCancelable(true)),
			trmsql.WithTxOptions(&sql.TxOptions{Isolation: sql.LevelReadCommitted}),
		),
		func(ctx context.Context) error {
			booking, err := s.bookingsRepo.GetForUpdate(ctx, bookingID)
			if errors.Is(err, entities.ErrBookingNotFound) {
				log.FromContext(ctx).Info("Booking ", bookingID, " already gone, nothing to release")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get booking: %w", err)
			}

			if booking.IsPaid {
				log.FromContext(ctx).Info("Booking ", bookingID, " paid in time, keeping seats")
				return nil
			}

			if err := s.showsRepo.RemoveOccupiedSeats(ctx, booking.ShowID, booking.BookedSeats); err != nil {
				return fmt.Errorf("failed to release seats of booking %s: %w", bookingID, err)
			}

			if err := s.bookingsRepo.Delete(ctx, booking.BookingID); err != nil {
				return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
			}

			log.FromContext(ctx).Info("Released seats ", booking.BookedSeats, " of unpaid booking ", bookingID)
			return nil
		})
}
