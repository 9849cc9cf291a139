package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/storage/memory"
)

func TestApplySeedsSampleData(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	empty, err := IsEmpty(ctx, store)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, Apply(ctx, store, zerolog.Nop()))

	empty, err = IsEmpty(ctx, store)
	require.NoError(t, err)
	assert.False(t, empty)

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
	for _, u := range users {
		assert.NotEqual(t, "gonullu2024", u.Password, "seed passwords must be hashed")
	}

	works, err := store.Works().List(ctx)
	require.NoError(t, err)
	require.Len(t, works, 3)
	for _, w := range works {
		assert.True(t, w.Approved, "seed works must be pre-approved")
	}

	news, err := store.News().List(ctx)
	require.NoError(t, err)
	assert.Len(t, news, 2)

	published, err := store.News().ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 1)

	upcoming, err := store.Events().ListUpcoming(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)
}

// A second Apply against the same store must not duplicate users.
func TestApplyIsIdempotentForUsers(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, Apply(ctx, store, zerolog.Nop()))
	_ = Apply(ctx, store, zerolog.Nop())

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
