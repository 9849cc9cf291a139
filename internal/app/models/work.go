package models

import (
	"time"
)

// Work defines a recorded charitable activity.
// AuthorID is a weak reference: deleting the author leaves the work in place.
type Work struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	AuthorID           *int64    `json:"authorId,omitempty"`
	WorkDate           time.Time `json:"workDate"`
	BeneficiariesCount int       `json:"beneficiariesCount"`
	Images             []string  `json:"images,omitempty"`
	Approved           bool      `json:"approved"`
	CreatedAt          time.Time `json:"createdAt"`
}
