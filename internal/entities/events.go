package entities

import (
	"time"

	"github.com/google/uuid"
)

type Event interface {
	IsInternal() bool
}

// EmailAddress is a single entry of the identity provider's
// email_addresses list.
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type UserCreated_v1 struct {
	Header EventHeader `json:"header"`

	UserID         string         `json:"user_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	ImageURL       string         `json:"image_url"`
}

func (e UserCreated_v1) IsInternal() bool {
	return false
}

type UserUpdated_v1 struct {
	Header EventHeader `json:"header"`

	UserID         string         `json:"user_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	ImageURL       string         `json:"image_url"`
}

func (e UserUpdated_v1) IsInternal() bool {
	return false
}

type UserDeleted_v1 struct {
	Header EventHeader `json:"header"`

	UserID string `json:"user_id"`
}

func (e UserDeleted_v1) IsInternal() bool {
	return false
}

// PaymentPending_v1 is emitted by the checkout flow right after it
// creates a booking and its seat holds.
type PaymentPending_v1 struct {
	Header EventHeader `json:"header"`

	BookingID uuid.UUID `json:"booking_id"`
}

func (e PaymentPending_v1) IsInternal() bool {
	return false
}

// SeatReleaseDue_v1 fires when a booking's grace period has elapsed.
// Published by the release scheduler, never by other services.
type SeatReleaseDue_v1 struct {
	Header EventHeader `json:"header"`

	BookingID   uuid.UUID `json:"booking_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

func (e SeatReleaseDue_v1) IsInternal() bool {
	return true
}
