package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

// MemberService handles member-related operations
type MemberService struct {
	store storage.Store
}

// NewMemberService creates a new member service instance
func NewMemberService(store storage.Store) *MemberService {
	return &MemberService{store: store}
}

// MemberContribution carries the per-member work totals shown on the
// member detail page.
type MemberContribution struct {
	WorksCount         int
	TotalBeneficiaries int
}

// Register creates a new member. The password is stored as a bcrypt hash.
func (s *MemberService) Register(ctx context.Context, user *models.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}
	if user.Role != "" && !user.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, user.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	return s.store.Users().Create(ctx, user)
}

// List returns all members ordered by id
func (s *MemberService) List(ctx context.Context) ([]models.User, error) {
	return s.store.Users().List(ctx)
}

// Get returns a single member by id
func (s *MemberService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.store.Users().Get(ctx, id)
}

// Contribution aggregates the member's works count and beneficiary total
func (s *MemberService) Contribution(ctx context.Context, id int64) (MemberContribution, error) {
	works, err := s.store.Works().ListByAuthor(ctx, id)
	if err != nil {
		return MemberContribution{}, err
	}

	var contrib MemberContribution
	for _, w := range works {
		contrib.WorksCount++
		contrib.TotalBeneficiaries += w.BeneficiariesCount
	}
	return contrib, nil
}

// Contributions aggregates work totals for every member in one pass over
// the works list.
func (s *MemberService) Contributions(ctx context.Context) (map[int64]MemberContribution, error) {
	works, err := s.store.Works().List(ctx)
	if err != nil {
		return nil, err
	}

	contribs := make(map[int64]MemberContribution)
	for _, w := range works {
		if w.AuthorID == nil {
			continue
		}
		c := contribs[*w.AuthorID]
		c.WorksCount++
		c.TotalBeneficiaries += w.BeneficiariesCount
		contribs[*w.AuthorID] = c
	}
	return contribs, nil
}

// Update applies a partial update to a member. A new password is hashed
// before it reaches storage.
func (s *MemberService) Update(ctx context.Context, id int64, patch storage.UserPatch) (*models.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *patch.Role)
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		str := string(hashed)
		patch.Password = &str
	}

	return s.store.Users().Update(ctx, id, patch)
}

// Delete removes a member by id
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.Users().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
