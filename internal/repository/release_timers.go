package repository

import (
	"context"
	"fmt"
	"time"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cinema/internal/entities"
)

// ReleaseTimersRepo persists seat-release resumption points, so a
// pending grace-period wait survives process restarts and can be
// picked up by any worker instance.
type ReleaseTimersRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewReleaseTimersRepo(db *sqlx.DB) *ReleaseTimersRepo {
	return &ReleaseTimersRepo{
		db:     db,
		getter: trmsqlx.DefaultCtxGetter,
	}
}

// Schedule records when the booking's payment check is due. Redelivery
// of the same payment-pending event hits the conflict clause and keeps
// the original deadline.
func (r *ReleaseTimersRepo) Schedule(ctx context.Context, bookingID uuid.UUID, fireAt time.Time) error {
	query := `
		INSERT INTO seat_release_timers (
			booking_id, fire_at
		) VALUES (
			$1, $2
		) ON CONFLICT (booking_id) DO NOTHING`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, bookingID, fireAt)
	if err != nil {
		return fmt.Errorf("failed to schedule release timer: %w", err)
	}

	return nil
}

// Due returns timers whose deadline has passed, oldest first.
func (r *ReleaseTimersRepo) Due(ctx context.Context, now time.Time, limit int) ([]entities.ReleaseTimer, error) {
	query := `
		SELECT booking_id, fire_at
		FROM seat_release_timers
		WHERE fire_at <= $1
		ORDER BY fire_at
		LIMIT $2`

	var timers []entities.ReleaseTimer
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &timers, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select due timers: %w", err)
	}

	return timers, nil
}

func (r *ReleaseTimersRepo) Delete(ctx context.Context, bookingID uuid.UUID) error {
	_, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, `DELETE FROM seat_release_timers WHERE booking_id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete release timer: %w", err)
	}

	return nil
}
