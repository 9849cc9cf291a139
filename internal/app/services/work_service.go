package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

// WorkService handles volunteer work operations
type WorkService struct {
	store storage.Store
}

// NewWorkService creates a new work service instance
func NewWorkService(store storage.Store) *WorkService {
	return &WorkService{store: store}
}

// authorRef resolves an optional author id to its compact projection. A
// dangling reference projects as nil rather than failing the request.
func authorRef(ctx context.Context, store storage.Store, authorID *int64) (*dto.AuthorRef, error) {
	if authorID == nil {
		return nil, nil
	}
	user, err := store.Users().Get(ctx, *authorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.AuthorRef{ID: user.ID, FullName: user.FullName}, nil
}

// validateAuthor checks that a referenced author exists
func validateAuthor(ctx context.Context, store storage.Store, authorID *int64) error {
	if authorID == nil {
		return nil
	}
	if _, err := store.Users().Get(ctx, *authorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: author %d not found", apperrors.ErrValidationFailed, *authorID)
		}
		return err
	}
	return nil
}

// Create stores a new work. It always enters the moderation queue
// unapproved regardless of what the caller set.
func (s *WorkService) Create(ctx context.Context, work *models.Work) error {
	if strings.TrimSpace(work.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateAuthor(ctx, s.store, work.AuthorID); err != nil {
		return err
	}
	return s.store.Works().Create(ctx, work)
}

// List returns works, optionally filtered by category
func (s *WorkService) List(ctx context.Context, category string) ([]models.Work, error) {
	if category != "" {
		return s.store.Works().ListByCategory(ctx, category)
	}
	return s.store.Works().List(ctx)
}

// Get returns a single work by id
func (s *WorkService) Get(ctx context.Context, id int64) (*models.Work, error) {
	return s.store.Works().Get(ctx, id)
}

// Update applies a partial update; this is the only path that can approve
func (s *WorkService) Update(ctx context.Context, id int64, patch storage.WorkPatch) (*models.Work, error) {
	if patch.AuthorID != nil {
		if err := validateAuthor(ctx, s.store, patch.AuthorID); err != nil {
			return nil, err
		}
	}
	return s.store.Works().Update(ctx, id, patch)
}

// Delete removes a work by id
func (s *WorkService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.Works().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

// ToResponse projects a work with its resolved author
func (s *WorkService) ToResponse(ctx context.Context, work *models.Work) (dto.WorkResponse, error) {
	author, err := authorRef(ctx, s.store, work.AuthorID)
	if err != nil {
		return dto.WorkResponse{}, err
	}
	return dto.NewWorkResponse(work, author), nil
}

// ToResponseList projects a slice of works with their resolved authors
func (s *WorkService) ToResponseList(ctx context.Context, works []models.Work) ([]dto.WorkResponse, error) {
	responses := make([]dto.WorkResponse, 0, len(works))
	for i := range works {
		resp, err := s.ToResponse(ctx, &works[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
