package file

import (
	"context"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

type newsStore struct {
	s *Store
}

func (n *newsStore) load() ([]models.News, error) {
	return readCollection[models.News](n.s.path(newsFile))
}

func (n *newsStore) save(news []models.News) error {
	return writeCollection(n.s.path(newsFile), news)
}

func (n *newsStore) Get(ctx context.Context, id int64) (*models.News, error) {
	news, err := n.load()
	if err != nil {
		return nil, err
	}
	for i := range news {
		if news[i].ID == id {
			return &news[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (n *newsStore) List(ctx context.Context) ([]models.News, error) {
	news, err := n.load()
	if err != nil {
		return nil, err
	}
	storage.SortNews(news)
	return news, nil
}

func (n *newsStore) ListPublished(ctx context.Context) ([]models.News, error) {
	news, err := n.load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.News, 0)
	for _, item := range news {
		if item.Published {
			filtered = append(filtered, item)
		}
	}
	storage.SortNews(filtered)
	return filtered, nil
}

func (n *newsStore) Create(ctx context.Context, item *models.News) error {
	news, err := n.load()
	if err != nil {
		return err
	}

	var maxID int64
	for _, existing := range news {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	// Publishing happens through updates only
	item.Published = false

	item.ID = maxID + 1
	item.CreatedAt = now()
	news = append(news, *item)
	return n.save(news)
}

func (n *newsStore) Update(ctx context.Context, id int64, patch storage.NewsPatch) (*models.News, error) {
	news, err := n.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range news {
		if news[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	item := news[idx]
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

	news[idx] = item
	if err := n.save(news); err != nil {
		return nil, err
	}
	return &item, nil
}

func (n *newsStore) Delete(ctx context.Context, id int64) (bool, error) {
	news, err := n.load()
	if err != nil {
		return false, err
	}

	kept := news[:0]
	found := false
	for _, item := range news {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return false, nil
	}
	return true, n.save(kept)
}
