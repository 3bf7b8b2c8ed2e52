package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"cinema/internal/entities"
)

type BookingsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewBookingsRepo(db *sqlx.DB) *BookingsRepo {
	return &BookingsRepo{
		db:     db,
		getter: trmsqlx.DefaultCtxGetter,
	}
}

// bookingRow is the sql shape of entities.Booking.
type bookingRow struct {
	BookingID   uuid.UUID       `db:"booking_id"`
	UserID      string          `db:"user_id"`
	ShowID      uuid.UUID       `db:"show_id"`
	Amount      decimal.Decimal `db:"amount"`
	BookedSeats pq.StringArray  `db:"booked_seats"`
	IsPaid      bool            `db:"is_paid"`
	PaymentLink sql.NullString  `db:"payment_link"`
	CreatedAt   sql.NullTime    `db:"created_at"`
	UpdatedAt   sql.NullTime    `db:"updated_at"`
}

func (row bookingRow) toEntity() *entities.Booking {
	booking := &entities.Booking{
		BookingID:   row.BookingID,
		UserID:      row.UserID,
		ShowID:      row.ShowID,
		Amount:      row.Amount,
		BookedSeats: row.BookedSeats,
		IsPaid:      row.IsPaid,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if row.PaymentLink.Valid {
		booking.PaymentLink = &row.PaymentLink.String
	}
	return booking
}

func (r *BookingsRepo) Create(ctx context.Context, booking *entities.Booking) (uuid.UUID, error) {
	query := `
		INSERT INTO bookings (
			user_id, show_id, amount, booked_seats, is_paid, payment_link
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING booking_id`

	var id uuid.UUID
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowxContext(ctx, query,
		booking.UserID,
		booking.ShowID,
		booking.Amount,
		pq.Array(booking.BookedSeats),
		booking.IsPaid,
		booking.PaymentLink,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (r *BookingsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate locks the booking row for the current transaction, so
// a concurrent payment confirmation and a release check serialize on
// the same booking.
func (r *BookingsRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	return r.get(ctx, id, true)
}

func (r *BookingsRepo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*entities.Booking, error) {
	query := `
		SELECT booking_id, user_id, show_id, amount, booked_seats,
			is_paid, payment_link, created_at, updated_at
		FROM bookings
		WHERE booking_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var row bookingRow
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", entities.ErrBookingNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return row.toEntity(), nil
}

// Delete removes the booking. A missing id is a no-op.
func (r *BookingsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, `DELETE FROM bookings WHERE booking_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

// MarkPaid flips the paid flag. The checkout flow owns this path; it
// lives here so tests can model a payment racing the release check.
func (r *BookingsRepo) MarkPaid(ctx context.Context, id uuid.UUID, paymentLink *string) error {
	query := `
		UPDATE bookings
		SET is_paid = TRUE,
			payment_link = COALESCE($2, payment_link),
			updated_at = now()
		WHERE booking_id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id, paymentLink)
	if err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", entities.ErrBookingNotFound, id)
	}

	return nil
}
