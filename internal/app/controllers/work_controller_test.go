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

func validWorkBody() map[string]any {
	return map[string]any{
		"title":              "Beach cleanup",
		"description":        "Two hours of litter collection",
		"category":           "environment",
		"workDate":           time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		"beneficiariesCount": 12,
	}
}

func TestCreateWorkStartsUnapproved(t *testing.T) {
	router, _ := newTestRouter(t)

	// Client-set approved must be ignored
	body := validWorkBody()
	body["approved"] = true
	w := performRequest(t, router, http.MethodPost, "/api/works", body)
	requireStatus(t, w, http.StatusCreated)

	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["approved"])
	assert.Equal(t, 12.0, resp["beneficiariesCount"])
}

func TestApproveWorkViaUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/works", validWorkBody())
	requireStatus(t, w, http.StatusCreated)
	id := int64(decodeBody(t, w)["id"].(float64))

	w = performRequest(t, router, http.MethodPut, fmt.Sprintf("/api/works/%d", id), map[string]any{"approved": true})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, true, decodeBody(t, w)["approved"])
}

func TestCreateWorkMissingTitle(t *testing.T) {
	router, _ := newTestRouter(t)

	body := validWorkBody()
	delete(body, "title")
	w := performRequest(t, router, http.MethodPost, "/api/works", body)
	requireStatus(t, w, http.StatusBadRequest)

	resp := decodeBody(t, w)
	errs, ok := resp["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "Title")
}

func TestCreateWorkUnknownAuthor(t *testing.T) {
	router, _ := newTestRouter(t)

	body := validWorkBody()
	body["authorId"] = 424242
	w := performRequest(t, router, http.MethodPost, "/api/works", body)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestListWorksCategoryFilter(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	for _, category := range []string{"environment", "education", "environment"} {
		work := &models.Work{Title: "W", Description: "d", Category: category}
		require.NoError(t, store.Works().Create(ctx, work))
	}

	w := performRequest(t, router, http.MethodGet, "/api/works?category=environment", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeList(t, w), 2)

	w = performRequest(t, router, http.MethodGet, "/api/works", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeList(t, w), 3)
}

func TestWorkAuthorProjection(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	user := &models.User{Username: "ayse", Password: "hash", FullName: "Ayşe Demir", Email: "ayse@example.com"}
	require.NoError(t, store.Users().Create(ctx, user))

	work := &models.Work{Title: "W", Description: "d", Category: "education", AuthorID: &user.ID}
	require.NoError(t, store.Works().Create(ctx, work))

	w := performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/works/%d", work.ID), nil)
	requireStatus(t, w, http.StatusOK)

	author, ok := decodeBody(t, w)["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ayşe Demir", author["fullName"])

	// A deleted author projects as null, the work survives
	_, err := store.Users().Delete(ctx, user.ID)
	require.NoError(t, err)

	w = performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/works/%d", work.ID), nil)
	requireStatus(t, w, http.StatusOK)
	assert.Nil(t, decodeBody(t, w)["author"])
}

func TestDeleteWorkThenGet(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/works", validWorkBody())
	requireStatus(t, w, http.StatusCreated)
	id := int64(decodeBody(t, w)["id"].(float64))

	w = performRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/works/%d", id), nil)
	requireStatus(t, w, http.StatusOK)

	w = performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/works/%d", id), nil)
	requireStatus(t, w, http.StatusNotFound)
}
