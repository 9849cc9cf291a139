package memory

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

func (e *eventStore) Get(ctx context.Context, id int64) (*models.Event, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	event, ok := e.s.events[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &event, nil
}

func (e *eventStore) List(ctx context.Context) ([]models.Event, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	events := make([]models.Event, 0, len(e.s.events))
	for _, event := range e.s.events {
		events = append(events, event)
	}
	storage.SortEvents(events)
	return events, nil
}

func (e *eventStore) ListUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	events := make([]models.Event, 0)
	for _, event := range e.s.events {
		if event.EventDate.After(now) {
			events = append(events, event)
		}
	}
	storage.SortEvents(events)
	return events, nil
}

func (e *eventStore) Create(ctx context.Context, event *models.Event) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	e.s.nextEventID++
	event.ID = e.s.nextEventID
	event.CreatedAt = now()
	e.s.events[event.ID] = *event
	return nil
}

func (e *eventStore) Update(ctx context.Context, id int64, patch storage.EventPatch) (*models.Event, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	event, ok := e.s.events[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

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

	e.s.events[id] = event
	return &event, nil
}

func (e *eventStore) Delete(ctx context.Context, id int64) (bool, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if _, ok := e.s.events[id]; !ok {
		return false, nil
	}
	delete(e.s.events, id)
	return true, nil
}
