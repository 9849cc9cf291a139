package file

import (
	"context"
	"time"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

type eventStore struct {
	s *Store
}

func (e *eventStore) load() ([]models.Event, error) {
	return readCollection[models.Event](e.s.path(eventsFile))
}

func (e *eventStore) save(events []models.Event) error {
	return writeCollection(e.s.path(eventsFile), events)
}

func (e *eventStore) Get(ctx context.Context, id int64) (*models.Event, error) {
	events, err := e.load()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (e *eventStore) List(ctx context.Context) ([]models.Event, error) {
	events, err := e.load()
	if err != nil {
		return nil, err
	}
	storage.SortEvents(events)
	return events, nil
}

func (e *eventStore) ListUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	events, err := e.load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Event, 0)
	for _, event := range events {
		if event.EventDate.After(now) {
			filtered = append(filtered, event)
		}
	}
	storage.SortEvents(filtered)
	return filtered, nil
}

func (e *eventStore) Create(ctx context.Context, event *models.Event) error {
	events, err := e.load()
	if err != nil {
		return err
	}

	var maxID int64
	for _, existing := range events {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	event.ID = maxID + 1
	event.CreatedAt = now()
	events = append(events, *event)
	return e.save(events)
}

func (e *eventStore) Update(ctx context.Context, id int64, patch storage.EventPatch) (*models.Event, error) {
	events, err := e.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range events {
		if events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	event := events[idx]
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.EventDate != nil {
		event.EventDate = *patch.EventDate
	}
	if patch.Location != nil {
		event.Location = patch.Location
	}

	events[idx] = event
	if err := e.save(events); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *eventStore) Delete(ctx context.Context, id int64) (bool, error) {
	events, err := e.load()
	if err != nil {
		return false, err
	}

	kept := events[:0]
	found := false
	for _, event := range events {
		if event.ID == id {
			found = true
			continue
		}
		kept = append(kept, event)
	}
	if !found {
		return false, nil
	}
	return true, e.save(kept)
}
