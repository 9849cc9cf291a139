package memory

import (
	"context"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

type userStore struct {
	s *Store
}

func (u *userStore) Get(ctx context.Context, id int64) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (u *userStore) List(ctx context.Context) ([]models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	users := make([]models.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		users = append(users, user)
	}
	storage.SortUsers(users)
	return users, nil
}

func (u *userStore) Create(ctx context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, existing := range u.s.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}

	if user.Role == "" {
		user.Role = models.RoleMember
	}

	u.s.nextUserID++
	user.ID = u.s.nextUserID
	user.CreatedAt = now()
	u.s.users[user.ID] = *user
	return nil
}

func (u *userStore) Update(ctx context.Context, id int64, patch storage.UserPatch) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if patch.Username != nil || patch.Email != nil {
		for otherID, existing := range u.s.users {
			if otherID == id {
				continue
			}
			if patch.Username != nil && existing.Username == *patch.Username {
				return nil, apperrors.ErrUsernameTaken
			}
			if patch.Email != nil && existing.Email == *patch.Email {
				return nil, apperrors.ErrEmailTaken
			}
		}
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}

	u.s.users[id] = user
	return &user, nil
}

func (u *userStore) Delete(ctx context.Context, id int64) (bool, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, ok := u.s.users[id]; !ok {
		return false, nil
	}
	delete(u.s.users, id)
	return true, nil
}
