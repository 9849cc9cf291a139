// Package memory implements the storage contract with process-lifetime maps.
// It is the zero-dependency default for development and tests; data does not
// survive a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/storage"
)

// Store keeps one map and one monotonic id counter per entity type. A single
// mutex guards all of them; contention is irrelevant at this scale.
type Store struct {
	mu sync.RWMutex

	users  map[int64]models.User
	works  map[int64]models.Work
	news   map[int64]models.News
	events map[int64]models.Event

	nextUserID  int64
	nextWorkID  int64
	nextNewsID  int64
	nextEventID int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:  make(map[int64]models.User),
		works:  make(map[int64]models.Work),
		news:   make(map[int64]models.News),
		events: make(map[int64]models.Event),
	}
}

func (s *Store) Users() storage.UserStore   { return &userStore{s} }
func (s *Store) Works() storage.WorkStore   { return &workStore{s} }
func (s *Store) News() storage.NewsStore    { return &newsStore{s} }
func (s *Store) Events() storage.EventStore { return &eventStore{s} }

// Ping always succeeds for the in-memory backend.
func (s *Store) Ping(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error { return nil }

func now() time.Time {
	return time.Now().UTC()
}
