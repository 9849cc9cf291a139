package models

import (
	"time"
)

// Event defines a scheduled community gathering.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	Location    *string   `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
