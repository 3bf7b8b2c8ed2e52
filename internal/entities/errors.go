package entities

import "errors"

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrBookingNotFound   = errors.New("booking not found")

	// ErrShowNotFound during a release is a data-integrity fault: a
	// booking referenced a show that is gone.
	ErrShowNotFound = errors.New("show not found")
)
