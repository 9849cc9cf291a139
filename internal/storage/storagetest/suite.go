// Package storagetest holds the behavioral suite every storage backend must
// pass. Backends run it from their own test files with a factory for a fresh
// store.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

// Factory returns a fresh, empty store for one test.
type Factory func(t *testing.T) storage.Store

// Suite exercises the storage contract against any backend.
type Suite struct {
	suite.Suite
	NewStore Factory

	store storage.Store
	ctx   context.Context
}

func (s *Suite) SetupTest() {
	s.store = s.NewStore(s.T())
	s.ctx = context.Background()
}

func (s *Suite) createUser(username, email string) *models.User {
	user := &models.User{
		Username: username,
		Password: "hashed-secret",
		FullName: "Test User",
		Email:    email,
	}
	s.Require().NoError(s.store.Users().Create(s.ctx, user))
	return user
}

func (s *Suite) createWork(title, category string, authorID *int64) *models.Work {
	work := &models.Work{
		Title:       title,
		Description: "something useful",
		Category:    category,
		AuthorID:    authorID,
		WorkDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.Works().Create(s.ctx, work))
	return work
}

// --- Users ---

func (s *Suite) TestCreateUserAssignsServerFields() {
	user := &models.User{
		ID:        999,
		Username:  "ayse",
		Password:  "hash",
		FullName:  "Ayşe Demir",
		Email:     "ayse@example.com",
		CreatedAt: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.Users().Create(s.ctx, user))

	s.Positive(user.ID)
	s.NotEqual(int64(999), user.ID)
	s.Equal(models.RoleMember, user.Role)
	s.WithinDuration(time.Now().UTC(), user.CreatedAt, time.Minute)
}

func (s *Suite) TestCreateUserDuplicateUsername() {
	s.createUser("ayse", "ayse@example.com")

	err := s.store.Users().Create(s.ctx, &models.User{
		Username: "ayse",
		Password: "hash",
		FullName: "Other",
		Email:    "other@example.com",
	})
	s.ErrorIs(err, apperrors.ErrUsernameTaken)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *Suite) TestCreateUserDuplicateEmail() {
	s.createUser("ayse", "ayse@example.com")

	err := s.store.Users().Create(s.ctx, &models.User{
		Username: "other",
		Password: "hash",
		FullName: "Other",
		Email:    "ayse@example.com",
	})
	s.ErrorIs(err, apperrors.ErrEmailTaken)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *Suite) TestGetUserNotFound() {
	_, err := s.store.Users().Get(s.ctx, 12345)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *Suite) TestUpdateUserPartial() {
	user := s.createUser("ayse", "ayse@example.com")

	newEmail := "ayse.demir@example.com"
	updated, err := s.store.Users().Update(s.ctx, user.ID, storage.UserPatch{Email: &newEmail})
	s.Require().NoError(err)

	s.Equal(newEmail, updated.Email)
	s.Equal(user.Username, updated.Username)
	s.Equal(user.Password, updated.Password)
	s.Equal(user.ID, updated.ID)
	s.True(user.CreatedAt.Equal(updated.CreatedAt))
}

func (s *Suite) TestUpdateUserEmptyPatch() {
	user := s.createUser("ayse", "ayse@example.com")

	updated, err := s.store.Users().Update(s.ctx, user.ID, storage.UserPatch{})
	s.Require().NoError(err)
	s.Equal(user.Username, updated.Username)
	s.Equal(user.Email, updated.Email)
	s.Equal(user.Role, updated.Role)
	s.True(user.CreatedAt.Equal(updated.CreatedAt))
}

func (s *Suite) TestUpdateUserConflictingEmail() {
	s.createUser("ayse", "ayse@example.com")
	other := s.createUser("mehmet", "mehmet@example.com")

	taken := "ayse@example.com"
	_, err := s.store.Users().Update(s.ctx, other.ID, storage.UserPatch{Email: &taken})
	s.ErrorIs(err, apperrors.ErrEmailTaken)
}

func (s *Suite) TestUpdateUserNotFound() {
	name := "ghost"
	_, err := s.store.Users().Update(s.ctx, 4242, storage.UserPatch{Username: &name})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *Suite) TestUpdateAbsentUserWinsOverConflict() {
	s.createUser("ayse", "ayse@example.com")

	// The target id does not exist; the colliding email must not mask that
	taken := "ayse@example.com"
	_, err := s.store.Users().Update(s.ctx, 4242, storage.UserPatch{Email: &taken})
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.NotErrorIs(err, apperrors.ErrConflict)
}

func (s *Suite) TestDeleteUserIdempotent() {
	user := s.createUser("ayse", "ayse@example.com")

	deleted, err := s.store.Users().Delete(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.store.Users().Delete(s.ctx, user.ID)
	s.Require().NoError(err)
	s.False(deleted)

	_, err = s.store.Users().Get(s.ctx, user.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *Suite) TestListUsersOrderedByID() {
	u1 := s.createUser("ayse", "ayse@example.com")
	u2 := s.createUser("mehmet", "mehmet@example.com")
	u3 := s.createUser("zeynep", "zeynep@example.com")

	users, err := s.store.Users().List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Equal([]int64{u1.ID, u2.ID, u3.ID}, []int64{users[0].ID, users[1].ID, users[2].ID})
}

// --- Works ---

func (s *Suite) TestCreateWorkForcesModeration() {
	work := &models.Work{
		Title:              "Cleanup",
		Description:        "beach cleanup",
		Category:           "environment",
		WorkDate:           time.Now().UTC(),
		BeneficiariesCount: -5,
		Approved:           true,
	}
	s.Require().NoError(s.store.Works().Create(s.ctx, work))

	s.False(work.Approved)
	s.Zero(work.BeneficiariesCount)

	stored, err := s.store.Works().Get(s.ctx, work.ID)
	s.Require().NoError(err)
	s.False(stored.Approved)
}

func (s *Suite) TestUpdateWorkApproval() {
	work := s.createWork("Cleanup", "environment", nil)

	approved := true
	updated, err := s.store.Works().Update(s.ctx, work.ID, storage.WorkPatch{Approved: &approved})
	s.Require().NoError(err)
	s.True(updated.Approved)
	s.Equal(work.Title, updated.Title)
}

func (s *Suite) TestListWorksByCategory() {
	s.createWork("Cleanup", "environment", nil)
	s.createWork("Tutoring", "education", nil)
	s.createWork("Tree planting", "environment", nil)

	works, err := s.store.Works().ListByCategory(s.ctx, "environment")
	s.Require().NoError(err)
	s.Require().Len(works, 2)
	for _, w := range works {
		s.Equal("environment", w.Category)
	}

	works, err = s.store.Works().ListByCategory(s.ctx, "health")
	s.Require().NoError(err)
	s.Empty(works)
}

func (s *Suite) TestListWorksByAuthor() {
	author := s.createUser("ayse", "ayse@example.com")
	other := s.createUser("mehmet", "mehmet@example.com")

	s.createWork("Cleanup", "environment", &author.ID)
	s.createWork("Tutoring", "education", &other.ID)
	s.createWork("Tree planting", "environment", &author.ID)

	works, err := s.store.Works().ListByAuthor(s.ctx, author.ID)
	s.Require().NoError(err)
	s.Len(works, 2)
}

func (s *Suite) TestListWorksCreationOrder() {
	w1 := s.createWork("First", "education", nil)
	w2 := s.createWork("Second", "education", nil)
	w3 := s.createWork("Third", "education", nil)

	works, err := s.store.Works().List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(works, 3)
	s.Equal([]int64{w1.ID, w2.ID, w3.ID}, []int64{works[0].ID, works[1].ID, works[2].ID})
}

func (s *Suite) TestDeleteWorkIdempotent() {
	work := s.createWork("Cleanup", "environment", nil)

	deleted, err := s.store.Works().Delete(s.ctx, work.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.store.Works().Delete(s.ctx, work.ID)
	s.Require().NoError(err)
	s.False(deleted)
}

// --- News ---

func (s *Suite) TestNewsPublishLifecycle() {
	item := &models.News{
		Title:     "Announcement",
		Content:   "hello",
		Published: true,
	}
	s.Require().NoError(s.store.News().Create(s.ctx, item))
	s.False(item.Published)

	published, err := s.store.News().ListPublished(s.ctx)
	s.Require().NoError(err)
	s.Empty(published)

	flag := true
	_, err = s.store.News().Update(s.ctx, item.ID, storage.NewsPatch{Published: &flag})
	s.Require().NoError(err)

	published, err = s.store.News().ListPublished(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(published, 1)
	s.Equal(item.ID, published[0].ID)
}

func (s *Suite) TestNewsPartialUpdateKeepsRelations() {
	item := &models.News{
		Title:          "Announcement",
		Content:        "hello",
		RelatedWorkIDs: []int64{1, 2},
	}
	s.Require().NoError(s.store.News().Create(s.ctx, item))

	newTitle := "Updated announcement"
	updated, err := s.store.News().Update(s.ctx, item.ID, storage.NewsPatch{Title: &newTitle})
	s.Require().NoError(err)
	s.Equal(newTitle, updated.Title)
	s.Equal([]int64{1, 2}, updated.RelatedWorkIDs)
}

// --- Events ---

func (s *Suite) TestListUpcomingEvents() {
	now := time.Now().UTC()

	past := &models.Event{Title: "Past meetup", Description: "done", EventDate: now.Add(-24 * time.Hour)}
	s.Require().NoError(s.store.Events().Create(s.ctx, past))

	exact := &models.Event{Title: "Right now", Description: "ongoing", EventDate: now}
	s.Require().NoError(s.store.Events().Create(s.ctx, exact))

	future := &models.Event{Title: "Future meetup", Description: "planned", EventDate: now.Add(24 * time.Hour)}
	s.Require().NoError(s.store.Events().Create(s.ctx, future))

	upcoming, err := s.store.Events().ListUpcoming(s.ctx, now)
	s.Require().NoError(err)
	s.Require().Len(upcoming, 1)
	s.Equal(future.ID, upcoming[0].ID)
}

func (s *Suite) TestListEventsOrderedByDate() {
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	later := &models.Event{Title: "Later", Description: "d", EventDate: base.Add(48 * time.Hour)}
	s.Require().NoError(s.store.Events().Create(s.ctx, later))

	earlier := &models.Event{Title: "Earlier", Description: "d", EventDate: base}
	s.Require().NoError(s.store.Events().Create(s.ctx, earlier))

	events, err := s.store.Events().List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(earlier.ID, events[0].ID)
	s.Equal(later.ID, events[1].ID)
}

func (s *Suite) TestUpdateEventLocation() {
	event := &models.Event{Title: "Meetup", Description: "d", EventDate: time.Now().UTC().Add(time.Hour)}
	s.Require().NoError(s.store.Events().Create(s.ctx, event))

	loc := "Community center"
	updated, err := s.store.Events().Update(s.ctx, event.ID, storage.EventPatch{Location: &loc})
	s.Require().NoError(err)
	s.Require().NotNil(updated.Location)
	s.Equal(loc, *updated.Location)
	s.Equal(event.Title, updated.Title)
}
