package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
	"github.com/ecem/goodworks/internal/storage/memory"
)

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewMemberService(memory.New())
	ctx := context.Background()

	user := &models.User{
		Username: "ayse",
		Password: "plaintext-secret",
		FullName: "Ayşe Demir",
		Email:    "ayse@example.com",
	}
	require.NoError(t, svc.Register(ctx, user))

	assert.NotEqual(t, "plaintext-secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plaintext-secret")))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewMemberService(memory.New())

	err := svc.Register(context.Background(), &models.User{
		Username: "ayse",
		Password: "secret",
		FullName: "Ayşe Demir",
		Email:    "ayse@example.com",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateHashesNewPassword(t *testing.T) {
	svc := NewMemberService(memory.New())
	ctx := context.Background()

	user := &models.User{Username: "ayse", Password: "old-secret", FullName: "Ayşe", Email: "ayse@example.com"}
	require.NoError(t, svc.Register(ctx, user))

	newPassword := "new-secret"
	updated, err := svc.Update(ctx, user.ID, storage.UserPatch{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, newPassword, updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)))
}

func TestDeleteMissingMember(t *testing.T) {
	svc := NewMemberService(memory.New())

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestContributionAggregates(t *testing.T) {
	store := memory.New()
	svc := NewMemberService(store)
	ctx := context.Background()

	user := &models.User{Username: "ayse", Password: "hash", FullName: "Ayşe", Email: "ayse@example.com"}
	require.NoError(t, store.Users().Create(ctx, user))

	for _, count := range []int{3, 7} {
		work := &models.Work{Title: "W", Description: "d", Category: "education", AuthorID: &user.ID, BeneficiariesCount: count}
		require.NoError(t, store.Works().Create(ctx, work))
	}

	contrib, err := svc.Contribution(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, contrib.WorksCount)
	assert.Equal(t, 10, contrib.TotalBeneficiaries)
}
