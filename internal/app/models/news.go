package models

import (
	"time"
)

// News defines a published community announcement.
type News struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Summary        *string   `json:"summary,omitempty"`
	AuthorID       *int64    `json:"authorId,omitempty"`
	RelatedWorkIDs []int64   `json:"relatedWorkIds,omitempty"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"createdAt"`
}
