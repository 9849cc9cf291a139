package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/pkg/dberrors"
	"github.com/ecem/goodworks/internal/pkg/logger"
	"github.com/ecem/goodworks/internal/storage"
)

type userStore struct {
	s *Store
}

var userColumns = []string{"id", "username", "password", "full_name", "email", "role", "created_at"}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.FullName, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// mapUserConflict translates unique violations into the shared sentinels.
func mapUserConflict(err error) error {
	switch {
	case dberrors.IsUniqueViolationConstraint(err, "users_username_key"):
		return apperrors.ErrUsernameTaken
	case dberrors.IsUniqueViolationConstraint(err, "users_email_key"):
		return apperrors.ErrEmailTaken
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrConflict
	}
	return nil
}

func (u *userStore) Get(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := u.s.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(u.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}
	return user, nil
}

func (u *userStore) List(ctx context.Context) ([]models.User, error) {
	sql, args, err := u.s.sb.Select(userColumns...).
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := u.s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func (u *userStore) Create(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	user.CreatedAt = now()

	sql, args, err := u.s.sb.Insert("users").
		Columns("username", "password", "full_name", "email", "role", "created_at").
		Values(user.Username, user.Password, user.FullName, user.Email, user.Role, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := u.s.pool.QueryRow(ctx, sql, args...).Scan(&user.ID); err != nil {
		if conflictErr := mapUserConflict(err); conflictErr != nil {
			return conflictErr
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (u *userStore) Update(ctx context.Context, id int64, patch storage.UserPatch) (*models.User, error) {
	setMap := map[string]interface{}{}
	if patch.Username != nil {
		setMap["username"] = *patch.Username
	}
	if patch.Password != nil {
		setMap["password"] = *patch.Password
	}
	if patch.FullName != nil {
		setMap["full_name"] = *patch.FullName
	}
	if patch.Email != nil {
		setMap["email"] = *patch.Email
	}
	if patch.Role != nil {
		setMap["role"] = *patch.Role
	}

	// Empty patch leaves the record untouched
	if len(setMap) == 0 {
		return u.Get(ctx, id)
	}

	sql, args, err := u.s.sb.Update("users").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update user query: %w", err)
	}

	user, err := scanUser(u.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if conflictErr := mapUserConflict(err); conflictErr != nil {
			return nil, conflictErr
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user query")
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

func (u *userStore) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := u.s.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := u.s.pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return false, fmt.Errorf("error deleting user: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
