package memory

import (
	"context"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

type workStore struct {
	s *Store
}

func (w *workStore) Get(ctx context.Context, id int64) (*models.Work, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()

	work, ok := w.s.works[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &work, nil
}

func (w *workStore) List(ctx context.Context) ([]models.Work, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()

	works := make([]models.Work, 0, len(w.s.works))
	for _, work := range w.s.works {
		works = append(works, work)
	}
	storage.SortWorks(works)
	return works, nil
}

func (w *workStore) ListByCategory(ctx context.Context, category string) ([]models.Work, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()

	works := make([]models.Work, 0)
	for _, work := range w.s.works {
		if work.Category == category {
			works = append(works, work)
		}
	}
	storage.SortWorks(works)
	return works, nil
}

func (w *workStore) ListByAuthor(ctx context.Context, authorID int64) ([]models.Work, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()

	works := make([]models.Work, 0)
	for _, work := range w.s.works {
		if work.AuthorID != nil && *work.AuthorID == authorID {
			works = append(works, work)
		}
	}
	storage.SortWorks(works)
	return works, nil
}

func (w *workStore) Create(ctx context.Context, work *models.Work) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()

	// Approval is granted through updates only
	work.Approved = false
	if work.BeneficiariesCount < 0 {
		work.BeneficiariesCount = 0
	}

	w.s.nextWorkID++
	work.ID = w.s.nextWorkID
	work.CreatedAt = now()
	w.s.works[work.ID] = *work
	return nil
}

func (w *workStore) Update(ctx context.Context, id int64, patch storage.WorkPatch) (*models.Work, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()

	work, ok := w.s.works[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if patch.Title != nil {
		work.Title = *patch.Title
	}
	if patch.Description != nil {
		work.Description = *patch.Description
	}
	if patch.Category != nil {
		work.Category = *patch.Category
	}
	if patch.AuthorID != nil {
		work.AuthorID = patch.AuthorID
	}
	if patch.WorkDate != nil {
		work.WorkDate = *patch.WorkDate
	}
	if patch.BeneficiariesCount != nil {
		work.BeneficiariesCount = *patch.BeneficiariesCount
	}
	if patch.Images != nil {
		work.Images = *patch.Images
	}
	if patch.Approved != nil {
		work.Approved = *patch.Approved
	}

	w.s.works[id] = work
	return &work, nil
}

func (w *workStore) Delete(ctx context.Context, id int64) (bool, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()

	if _, ok := w.s.works[id]; !ok {
		return false, nil
	}
	delete(w.s.works, id)
	return true, nil
}
