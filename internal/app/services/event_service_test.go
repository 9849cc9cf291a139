package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/storage/memory"
)

func TestListUpcomingUsesCurrentTime(t *testing.T) {
	store := memory.New()
	svc := NewEventService(store)
	ctx := context.Background()

	fixed := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	past := &models.Event{Title: "Past", Description: "d", EventDate: fixed.Add(-time.Hour)}
	require.NoError(t, store.Events().Create(ctx, past))

	boundary := &models.Event{Title: "Boundary", Description: "d", EventDate: fixed}
	require.NoError(t, store.Events().Create(ctx, boundary))

	future := &models.Event{Title: "Future", Description: "d", EventDate: fixed.Add(time.Hour)}
	require.NoError(t, store.Events().Create(ctx, future))

	events, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, future.ID, events[0].ID)
}
