// Package storage defines the data-access contract shared by the postgres,
// file and memory backends. All backends apply the same defaults on create
// (server-assigned id and createdAt, approved/published starting false), the
// same uniqueness errors for users and the same not-found signaling, so the
// service layer and its tests stay backend-agnostic.
//
// Ordering is uniform across backends: works and news list ascending by
// createdAt (id breaks ties), events ascending by eventDate, users ascending
// by id.
package storage

import (
	"context"
	"time"

	"github.com/ecem/goodworks/internal/app/models"
)

// Store aggregates the per-entity stores of one backend.
type Store interface {
	Users() UserStore
	Works() WorkStore
	News() NewsStore
	Events() EventStore

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources. Safe to call once.
	Close() error
}

// UserStore persists community members.
type UserStore interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Create assigns ID and CreatedAt and stores the user. Duplicate
	// username or email fails with apperrors.ErrUsernameTaken or
	// apperrors.ErrEmailTaken and stores nothing.
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id int64, patch UserPatch) (*models.User, error)
	// Delete reports whether a record was removed. Deleting an absent id
	// is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}

// WorkStore persists charitable works.
type WorkStore interface {
	Get(ctx context.Context, id int64) (*models.Work, error)
	List(ctx context.Context) ([]models.Work, error)
	ListByCategory(ctx context.Context, category string) ([]models.Work, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Work, error)
	Create(ctx context.Context, work *models.Work) error
	Update(ctx context.Context, id int64, patch WorkPatch) (*models.Work, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// NewsStore persists community news.
type NewsStore interface {
	Get(ctx context.Context, id int64) (*models.News, error)
	List(ctx context.Context) ([]models.News, error)
	ListPublished(ctx context.Context) ([]models.News, error)
	Create(ctx context.Context, news *models.News) error
	Update(ctx context.Context, id int64, patch NewsPatch) (*models.News, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EventStore persists scheduled events.
type EventStore interface {
	Get(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	// ListUpcoming returns events strictly after now, soonest first.
	ListUpcoming(ctx context.Context, now time.Time) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, id int64, patch EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Patch types carry partial updates. A nil field keeps the stored value.
// ID and CreatedAt are never patchable.

// UserPatch is a partial update for a user. Password must already be hashed.
type UserPatch struct {
	Username *string
	Password *string
	FullName *string
	Email    *string
	Role     *models.Role
}

// WorkPatch is a partial update for a work.
type WorkPatch struct {
	Title              *string
	Description        *string
	Category           *string
	AuthorID           *int64
	WorkDate           *time.Time
	BeneficiariesCount *int
	Images             *[]string
	Approved           *bool
}

// NewsPatch is a partial update for a news item.
type NewsPatch struct {
	Title          *string
	Content        *string
	Summary        *string
	AuthorID       *int64
	RelatedWorkIDs *[]int64
	Published      *bool
}

// EventPatch is a partial update for an event.
type EventPatch struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	Location    *string
}
