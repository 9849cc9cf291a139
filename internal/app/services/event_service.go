package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

// EventService handles event operations
type EventService struct {
	store storage.Store
	now   func() time.Time
}

// NewEventService creates a new event service instance
func NewEventService(store storage.Store) *EventService {
	return &EventService{store: store, now: time.Now}
}

// Create stores a new event
func (s *EventService) Create(ctx context.Context, event *models.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Events().Create(ctx, event)
}

// List returns all events ordered by event date
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.store.Events().List(ctx)
}

// ListUpcoming returns events strictly after the current time
func (s *EventService) ListUpcoming(ctx context.Context) ([]models.Event, error) {
	return s.store.Events().ListUpcoming(ctx, s.now().UTC())
}

// Get returns a single event by id
func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.store.Events().Get(ctx, id)
}

// Update applies a partial update to an event
func (s *EventService) Update(ctx context.Context, id int64, patch storage.EventPatch) (*models.Event, error) {
	return s.store.Events().Update(ctx, id, patch)
}

// Delete removes an event by id
func (s *EventService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.Events().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
