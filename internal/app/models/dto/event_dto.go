package dto

import (
	"time"

	"github.com/ecem/goodworks/internal/app/models"
)

// CreateEventRequest represents event creation data
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	Location    *string   `json:"location"`
}

// UpdateEventRequest represents event update data; omitted fields are kept
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"eventDate"`
	Location    *string    `json:"location"`
}

// EventResponse represents an event
type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewEventResponse maps an event model to its API shape
func NewEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt,
	}
}
