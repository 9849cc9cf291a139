package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/app/models"
)

func TestEventsListShowsUpcomingOnly(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()
	now := time.Now().UTC()

	past := &models.Event{Title: "Past", Description: "d", EventDate: now.Add(-48 * time.Hour)}
	require.NoError(t, store.Events().Create(ctx, past))

	future := &models.Event{Title: "Future", Description: "d", EventDate: now.Add(48 * time.Hour)}
	require.NoError(t, store.Events().Create(ctx, future))

	w := performRequest(t, router, http.MethodGet, "/api/events", nil)
	requireStatus(t, w, http.StatusOK)
	events := decodeList(t, w)
	require.Len(t, events, 1)
	assert.Equal(t, "Future", events[0]["title"])

	w = performRequest(t, router, http.MethodGet, "/api/events?all=true", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeList(t, w), 2)
}

func TestCreateAndUpdateEvent(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/events", map[string]any{
		"title":       "Meetup",
		"description": "monthly planning",
		"eventDate":   time.Now().UTC().Add(72 * time.Hour),
	})
	requireStatus(t, w, http.StatusCreated)
	body := decodeBody(t, w)
	assert.Nil(t, body["location"])
	id := int64(body["id"].(float64))

	w = performRequest(t, router, http.MethodPut, fmt.Sprintf("/api/events/%d", id), map[string]any{
		"location": "Community center",
	})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Community center", decodeBody(t, w)["location"])
}

func TestCreateEventValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/events", map[string]any{"title": "No date"})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestEventNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodGet, "/api/events/777", nil)
	requireStatus(t, w, http.StatusNotFound)
}
