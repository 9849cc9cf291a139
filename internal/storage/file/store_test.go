package file_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/storage"
	"github.com/ecem/goodworks/internal/storage/file"
	"github.com/ecem/goodworks/internal/storage/storagetest"
)

func TestFileStoreContract(t *testing.T) {
	suite.Run(t, &storagetest.Suite{
		NewStore: func(t *testing.T) storage.Store {
			store, err := file.New(t.TempDir())
			require.NoError(t, err)
			return store
		},
	})
}

// Reopening a store over the same directory must see everything the first
// instance wrote, including the id counter position.
func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := file.New(dir)
	require.NoError(t, err)

	user := &models.User{
		Username: "ayse",
		Password: "hash",
		FullName: "Ayşe Demir",
		Email:    "ayse@example.com",
	}
	require.NoError(t, first.Users().Create(ctx, user))

	work := &models.Work{
		Title:       "Cleanup",
		Description: "beach cleanup",
		Category:    "environment",
		AuthorID:    &user.ID,
		WorkDate:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, first.Works().Create(ctx, work))
	require.NoError(t, first.Close())

	second, err := file.New(dir)
	require.NoError(t, err)

	got, err := second.Users().Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, user.Email, got.Email)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))

	works, err := second.Works().ListByAuthor(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, work.Title, works[0].Title)

	// New ids continue past what the first instance assigned
	another := &models.User{
		Username: "mehmet",
		Password: "hash",
		FullName: "Mehmet Kaya",
		Email:    "mehmet@example.com",
	}
	require.NoError(t, second.Users().Create(ctx, another))
	assert.Greater(t, another.ID, user.ID)
}
