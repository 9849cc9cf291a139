package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/storage"
)

func TestNewsListShowsPublishedOnly(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	draft := &models.News{Title: "Draft", Content: "c"}
	require.NoError(t, store.News().Create(ctx, draft))

	public := &models.News{Title: "Public", Content: "c"}
	require.NoError(t, store.News().Create(ctx, public))
	published := true
	_, err := store.News().Update(ctx, public.ID, storage.NewsPatch{Published: &published})
	require.NoError(t, err)

	w := performRequest(t, router, http.MethodGet, "/api/news", nil)
	requireStatus(t, w, http.StatusOK)
	items := decodeList(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Public", items[0]["title"])

	w = performRequest(t, router, http.MethodGet, "/api/news?all=true", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeList(t, w), 2)
}

func TestCreateNewsStartsAsDraft(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/news", map[string]any{
		"title":     "Announcement",
		"content":   "hello",
		"published": true,
	})
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["published"])
	assert.Equal(t, []any{}, body["relatedWorkIds"])
}

func TestPublishNewsViaUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/news", map[string]any{
		"title":   "Announcement",
		"content": "hello",
	})
	requireStatus(t, w, http.StatusCreated)
	id := int64(decodeBody(t, w)["id"].(float64))

	w = performRequest(t, router, http.MethodPut, fmt.Sprintf("/api/news/%d", id), map[string]any{"published": true})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, true, decodeBody(t, w)["published"])
}

func TestCreateNewsValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/news", map[string]any{"title": "No content"})
	requireStatus(t, w, http.StatusBadRequest)
}
