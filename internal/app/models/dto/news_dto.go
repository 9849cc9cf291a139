package dto

import (
	"time"

	"github.com/ecem/goodworks/internal/app/models"
)

// CreateNewsRequest represents news submission data. Items start unpublished.
type CreateNewsRequest struct {
	Title          string  `json:"title" binding:"required"`
	Content        string  `json:"content" binding:"required"`
	Summary        *string `json:"summary"`
	AuthorID       *int64  `json:"authorId"`
	RelatedWorkIDs []int64 `json:"relatedWorkIds"`
}

// UpdateNewsRequest represents news update data; publishing flips here
type UpdateNewsRequest struct {
	Title          *string    `json:"title"`
	Content        *string    `json:"content"`
	Summary        *string    `json:"summary"`
	AuthorID       *int64     `json:"authorId"`
	RelatedWorkIDs *[]int64   `json:"relatedWorkIds"`
	Published      *bool      `json:"published"`
}

// NewsResponse represents a news item with its author projected in
type NewsResponse struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Summary        *string    `json:"summary"`
	Author         *AuthorRef `json:"author"`
	RelatedWorkIDs []int64    `json:"relatedWorkIds"`
	Published      bool       `json:"published"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewNewsResponse maps a news model to its API shape
func NewNewsResponse(n *models.News, author *AuthorRef) NewsResponse {
	related := n.RelatedWorkIDs
	if related == nil {
		related = []int64{}
	}
	return NewsResponse{
		ID:             n.ID,
		Title:          n.Title,
		Content:        n.Content,
		Summary:        n.Summary,
		Author:         author,
		RelatedWorkIDs: related,
		Published:      n.Published,
		CreatedAt:      n.CreatedAt,
	}
}
