package dto

import (
	"time"

	"github.com/ecem/goodworks/internal/app/models"
)

// AuthorRef is the compact author projection embedded in work and news
// responses.
type AuthorRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// CreateWorkRequest represents work submission data. New works always enter
// the moderation queue, so there is no approved field here.
type CreateWorkRequest struct {
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description" binding:"required"`
	Category           string    `json:"category" binding:"required"`
	AuthorID           *int64    `json:"authorId"`
	WorkDate           time.Time `json:"workDate" binding:"required"`
	BeneficiariesCount int       `json:"beneficiariesCount" binding:"omitempty,min=0"`
	Images             []string  `json:"images"`
}

// UpdateWorkRequest represents work update data; approval flips here
type UpdateWorkRequest struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	Category           *string    `json:"category"`
	AuthorID           *int64     `json:"authorId"`
	WorkDate           *time.Time `json:"workDate"`
	BeneficiariesCount *int       `json:"beneficiariesCount" binding:"omitempty,min=0"`
	Images             *[]string  `json:"images"`
	Approved           *bool      `json:"approved"`
}

// WorkResponse represents a work with its author projected in
type WorkResponse struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	Author             *AuthorRef `json:"author"`
	WorkDate           time.Time  `json:"workDate"`
	BeneficiariesCount int        `json:"beneficiariesCount"`
	Images             []string   `json:"images"`
	Approved           bool       `json:"approved"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// NewWorkResponse maps a work model to its API shape. author may be nil when
// the referenced user no longer exists.
func NewWorkResponse(w *models.Work, author *AuthorRef) WorkResponse {
	images := w.Images
	if images == nil {
		images = []string{}
	}
	return WorkResponse{
		ID:                 w.ID,
		Title:              w.Title,
		Description:        w.Description,
		Category:           w.Category,
		Author:             author,
		WorkDate:           w.WorkDate,
		BeneficiariesCount: w.BeneficiariesCount,
		Images:             images,
		Approved:           w.Approved,
		CreatedAt:          w.CreatedAt,
	}
}
