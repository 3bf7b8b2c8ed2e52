package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	BookingID   uuid.UUID       `json:"booking_id"`
	UserID      string          `json:"user_id"`
	ShowID      uuid.UUID       `json:"show_id"`
	Amount      decimal.Decimal `json:"amount"`
	BookedSeats []string        `json:"booked_seats"`
	IsPaid      bool            `json:"is_paid"`
	PaymentLink *string         `json:"payment_link,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ReleaseTimer is the persisted resumption point of a pending
// seat-release check.
type ReleaseTimer struct {
	BookingID uuid.UUID `json:"booking_id" db:"booking_id"`
	FireAt    time.Time `json:"fire_at" db:"fire_at"`
}
