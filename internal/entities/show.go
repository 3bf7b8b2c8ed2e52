package entities

import (
	"time"

	"github.com/google/uuid"
)

type Show struct {
	ShowID    uuid.UUID `json:"show_id"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	StartTime time.Time `json:"start_time"`

	// OccupiedSeats maps seat label to the id of the user holding it.
	OccupiedSeats map[string]string `json:"occupied_seats"`
}
