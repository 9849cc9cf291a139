package memory

import (
	"context"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

type newsStore struct {
	s *Store
}

func (n *newsStore) Get(ctx context.Context, id int64) (*models.News, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	item, ok := n.s.news[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

func (n *newsStore) List(ctx context.Context) ([]models.News, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	news := make([]models.News, 0, len(n.s.news))
	for _, item := range n.s.news {
		news = append(news, item)
	}
	storage.SortNews(news)
	return news, nil
}

func (n *newsStore) ListPublished(ctx context.Context) ([]models.News, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	news := make([]models.News, 0)
	for _, item := range n.s.news {
		if item.Published {
			news = append(news, item)
		}
	}
	storage.SortNews(news)
	return news, nil
}

func (n *newsStore) Create(ctx context.Context, item *models.News) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	// Publishing happens through updates only
	item.Published = false

	n.s.nextNewsID++
	item.ID = n.s.nextNewsID
	item.CreatedAt = now()
	n.s.news[item.ID] = *item
	return nil
}

func (n *newsStore) Update(ctx context.Context, id int64, patch storage.NewsPatch) (*models.News, error) {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	item, ok := n.s.news[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Content != nil {
		item.Content = *patch.Content
	}
	if patch.Summary != nil {
		item.Summary = patch.Summary
	}
	if patch.AuthorID != nil {
		item.AuthorID = patch.AuthorID
	}
	if patch.RelatedWorkIDs != nil {
		item.RelatedWorkIDs = *patch.RelatedWorkIDs
	}
	if patch.Published != nil {
		item.Published = *patch.Published
	}

	n.s.news[id] = item
	return &item, nil
}

func (n *newsStore) Delete(ctx context.Context, id int64) (bool, error) {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	if _, ok := n.s.news[id]; !ok {
		return false, nil
	}
	delete(n.s.news, id)
	return true, nil
}
