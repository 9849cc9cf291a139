package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/app/models"
)

func TestStatsAggregation(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		user := &models.User{
			Username: fmt.Sprintf("user%d", i),
			Password: "hash",
			FullName: "User",
			Email:    fmt.Sprintf("user%d@example.com", i),
		}
		require.NoError(t, store.Users().Create(ctx, user))
	}
	for _, beneficiaries := range []int{5, 10, 0} {
		work := &models.Work{Title: "W", Description: "d", Category: "education", BeneficiariesCount: beneficiaries}
		require.NoError(t, store.Works().Create(ctx, work))
	}

	w := performRequest(t, router, http.MethodGet, "/api/stats", nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, 2.0, body["totalMembers"])
	assert.Equal(t, 3.0, body["totalWorks"])
	assert.Equal(t, 15.0, body["totalBeneficiaries"])
	assert.Equal(t, 6.0, body["volunteerHours"])
}

func TestStatsEmptyStore(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodGet, "/api/stats", nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, 0.0, body["totalMembers"])
	assert.Equal(t, 0.0, body["volunteerHours"])
}

func TestContactSubmission(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Ayşe",
		"email":   "ayse@example.com",
		"subject": "Hello",
		"message": "I want to volunteer",
	})
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["reference"])
	assert.Equal(t, "Your message has been received", body["message"])
}

func TestContactValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":  "Ayşe",
		"email": "not-an-email",
	})
	requireStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Message")
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodGet, "/api/health", nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["storage"])
}
