package file

import (
	"context"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/storage"
)

type userStore struct {
	s *Store
}

func (u *userStore) load() ([]models.User, error) {
	return readCollection[models.User](u.s.path(usersFile))
}

func (u *userStore) save(users []models.User) error {
	return writeCollection(u.s.path(usersFile), users)
}

func (u *userStore) Get(ctx context.Context, id int64) (*models.User, error) {
	users, err := u.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (u *userStore) List(ctx context.Context) ([]models.User, error) {
	users, err := u.load()
	if err != nil {
		return nil, err
	}
	storage.SortUsers(users)
	return users, nil
}

func (u *userStore) Create(ctx context.Context, user *models.User) error {
	users, err := u.load()
	if err != nil {
		return err
	}

	var maxID int64
	for _, existing := range users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	if user.Role == "" {
		user.Role = models.RoleMember
	}

	user.ID = maxID + 1
	user.CreatedAt = now()
	users = append(users, *user)
	return u.save(users)
}

func (u *userStore) Update(ctx context.Context, id int64, patch storage.UserPatch) (*models.User, error) {
	users, err := u.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	// Conflict checks only after the target is known to exist
	for i := range users {
		if i == idx {
			continue
		}
		if patch.Username != nil && users[i].Username == *patch.Username {
			return nil, apperrors.ErrUsernameTaken
		}
		if patch.Email != nil && users[i].Email == *patch.Email {
			return nil, apperrors.ErrEmailTaken
		}
	}

	user := users[idx]
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

	users[idx] = user
	if err := u.save(users); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userStore) Delete(ctx context.Context, id int64) (bool, error) {
	users, err := u.load()
	if err != nil {
		return false, err
	}

	kept := users[:0]
	found := false
	for _, user := range users {
		if user.ID == id {
			found = true
			continue
		}
		kept = append(kept, user)
	}
	if !found {
		return false, nil
	}
	return true, u.save(kept)
}
