package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

// NewsService handles news operations
type NewsService struct {
	store storage.Store
}

// NewNewsService creates a new news service instance
func NewNewsService(store storage.Store) *NewsService {
	return &NewsService{store: store}
}

// Create stores a new news item. Items always start unpublished.
func (s *NewsService) Create(ctx context.Context, item *models.News) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateAuthor(ctx, s.store, item.AuthorID); err != nil {
		return err
	}
	return s.store.News().Create(ctx, item)
}

// List returns all news items, drafts included
func (s *NewsService) List(ctx context.Context) ([]models.News, error) {
	return s.store.News().List(ctx)
}

// ListPublished returns only items that have been published
func (s *NewsService) ListPublished(ctx context.Context) ([]models.News, error) {
	return s.store.News().ListPublished(ctx)
}

// Get returns a single news item by id
func (s *NewsService) Get(ctx context.Context, id int64) (*models.News, error) {
	return s.store.News().Get(ctx, id)
}

// Update applies a partial update; this is the only path that can publish
func (s *NewsService) Update(ctx context.Context, id int64, patch storage.NewsPatch) (*models.News, error) {
	if patch.AuthorID != nil {
		if err := validateAuthor(ctx, s.store, patch.AuthorID); err != nil {
			return nil, err
		}
	}
	return s.store.News().Update(ctx, id, patch)
}

// Delete removes a news item by id
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.News().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

// ToResponse projects a news item with its resolved author
func (s *NewsService) ToResponse(ctx context.Context, item *models.News) (dto.NewsResponse, error) {
	author, err := authorRef(ctx, s.store, item.AuthorID)
	if err != nil {
		return dto.NewsResponse{}, err
	}
	return dto.NewNewsResponse(item, author), nil
}

// ToResponseList projects a slice of news items with their resolved authors
func (s *NewsService) ToResponseList(ctx context.Context, items []models.News) ([]dto.NewsResponse, error) {
	responses := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		resp, err := s.ToResponse(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
