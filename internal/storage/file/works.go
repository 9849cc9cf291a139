package file

import (
	"context"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

type workStore struct {
	s *Store
}

func (w *workStore) load() ([]models.Work, error) {
	return readCollection[models.Work](w.s.path(worksFile))
}

func (w *workStore) save(works []models.Work) error {
	return writeCollection(w.s.path(worksFile), works)
}

func (w *workStore) Get(ctx context.Context, id int64) (*models.Work, error) {
	works, err := w.load()
	if err != nil {
		return nil, err
	}
	for i := range works {
		if works[i].ID == id {
			return &works[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (w *workStore) List(ctx context.Context) ([]models.Work, error) {
	works, err := w.load()
	if err != nil {
		return nil, err
	}
	storage.SortWorks(works)
	return works, nil
}

func (w *workStore) ListByCategory(ctx context.Context, category string) ([]models.Work, error) {
	works, err := w.load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Work, 0)
	for _, work := range works {
		if work.Category == category {
			filtered = append(filtered, work)
		}
	}
	storage.SortWorks(filtered)
	return filtered, nil
}

func (w *workStore) ListByAuthor(ctx context.Context, authorID int64) ([]models.Work, error) {
	works, err := w.load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Work, 0)
	for _, work := range works {
		if work.AuthorID != nil && *work.AuthorID == authorID {
			filtered = append(filtered, work)
		}
	}
	storage.SortWorks(filtered)
	return filtered, nil
}

func (w *workStore) Create(ctx context.Context, work *models.Work) error {
	works, err := w.load()
	if err != nil {
		return err
	}

	var maxID int64
	for _, existing := range works {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	// Approval is granted through updates only
	work.Approved = false
	if work.BeneficiariesCount < 0 {
		work.BeneficiariesCount = 0
	}

	work.ID = maxID + 1
	work.CreatedAt = now()
	works = append(works, *work)
	return w.save(works)
}

func (w *workStore) Update(ctx context.Context, id int64, patch storage.WorkPatch) (*models.Work, error) {
	works, err := w.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range works {
		if works[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	work := works[idx]
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

	works[idx] = work
	if err := w.save(works); err != nil {
		return nil, err
	}
	return &work, nil
}

func (w *workStore) Delete(ctx context.Context, id int64) (bool, error) {
	works, err := w.load()
	if err != nil {
		return false, err
	}

	kept := works[:0]
	found := false
	for _, work := range works {
		if work.ID == id {
			found = true
			continue
		}
		kept = append(kept, work)
	}
	if !found {
		return false, nil
	}
	return true, w.save(kept)
}
