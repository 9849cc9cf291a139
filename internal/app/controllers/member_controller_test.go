package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/app/models/dto"
)

func validMemberBody() dto.CreateMemberRequest {
	return dto.CreateMemberRequest{
		Username: "aysedemir",
		Password: "secret123",
		FullName: "Ayşe Demir",
		Email:    "ayse@example.com",
	}
}

func TestCreateMember(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/members", validMemberBody())
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	assert.Equal(t, "aysedemir", body["username"])
	assert.Equal(t, "member", body["role"])
	assert.NotContains(t, body, "password")
	assert.Greater(t, body["id"].(float64), 0.0)
}

func TestCreateMemberValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	req := validMemberBody()
	req.Email = "not-an-email"
	w := performRequest(t, router, http.MethodPost, "/api/members", req)
	requireStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["message"])
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "Email")
}

func TestCreateMemberDuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/members", validMemberBody())
	requireStatus(t, w, http.StatusCreated)

	dup := validMemberBody()
	dup.Username = "someoneelse"
	w = performRequest(t, router, http.MethodPost, "/api/members", dup)
	requireStatus(t, w, http.StatusConflict)

	body := decodeBody(t, w)
	assert.Equal(t, "Email already registered", body["message"])
}

func TestGetMemberNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodGet, "/api/members/999", nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestGetMemberInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodGet, "/api/members/abc", nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestGetMemberDetailAggregates(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	user := &models.User{Username: "ayse", Password: "hash", FullName: "Ayşe Demir", Email: "ayse@example.com"}
	require.NoError(t, store.Users().Create(ctx, user))

	for _, beneficiaries := range []int{5, 10} {
		work := &models.Work{
			Title:              "Work",
			Description:        "d",
			Category:           "education",
			AuthorID:           &user.ID,
			BeneficiariesCount: beneficiaries,
		}
		require.NoError(t, store.Works().Create(ctx, work))
	}

	w := performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/members/%d", user.ID), nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, 2.0, body["worksCount"])
	assert.Equal(t, 15.0, body["totalBeneficiaries"])
}

func TestListMembersIncludesAggregates(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	user := &models.User{Username: "ayse", Password: "hash", FullName: "Ayşe Demir", Email: "ayse@example.com"}
	require.NoError(t, store.Users().Create(ctx, user))

	idle := &models.User{Username: "mehmet", Password: "hash", FullName: "Mehmet Kaya", Email: "mehmet@example.com"}
	require.NoError(t, store.Users().Create(ctx, idle))

	work := &models.Work{Title: "W", Description: "d", Category: "education", AuthorID: &user.ID, BeneficiariesCount: 5}
	require.NoError(t, store.Works().Create(ctx, work))

	w := performRequest(t, router, http.MethodGet, "/api/members", nil)
	requireStatus(t, w, http.StatusOK)

	members := decodeList(t, w)
	require.Len(t, members, 2)
	assert.Equal(t, 1.0, members[0]["worksCount"])
	assert.Equal(t, 5.0, members[0]["totalBeneficiaries"])
	assert.Equal(t, 0.0, members[1]["worksCount"])
	assert.Equal(t, 0.0, members[1]["totalBeneficiaries"])
}

func TestUpdateMember(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/members", validMemberBody())
	requireStatus(t, w, http.StatusCreated)
	id := int64(decodeBody(t, w)["id"].(float64))

	newName := "Ayşe D."
	w = performRequest(t, router, http.MethodPut, fmt.Sprintf("/api/members/%d", id), dto.UpdateMemberRequest{FullName: &newName})
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, newName, body["fullName"])
	assert.Equal(t, "aysedemir", body["username"])
}

func TestDeleteMember(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/members", validMemberBody())
	requireStatus(t, w, http.StatusCreated)
	id := int64(decodeBody(t, w)["id"].(float64))

	w = performRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/members/%d", id), nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Member deleted", decodeBody(t, w)["message"])

	w = performRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/members/%d", id), nil)
	requireStatus(t, w, http.StatusNotFound)
}
