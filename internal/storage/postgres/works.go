package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/pkg/logger"
	"github.com/ecem/goodworks/internal/storage"
)

type workStore struct {
	s *Store
}

var workColumns = []string{"id", "title", "description", "category", "author_id", "work_date", "beneficiaries_count", "images", "approved", "created_at"}

func scanWork(row pgx.Row) (*models.Work, error) {
	work := &models.Work{}
	err := row.Scan(&work.ID, &work.Title, &work.Description, &work.Category, &work.AuthorID,
		&work.WorkDate, &work.BeneficiariesCount, &work.Images, &work.Approved, &work.CreatedAt)
	if err != nil {
		return nil, err
	}
	return work, nil
}

func (w *workStore) queryWorks(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Work, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build works query: %w", err)
	}

	rows, err := w.s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying works: %w", err)
	}
	defer rows.Close()

	works := []models.Work{}
	for rows.Next() {
		work, err := scanWork(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning work row: %w", err)
		}
		works = append(works, *work)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work rows: %w", err)
	}
	return works, nil
}

func (w *workStore) baseSelect() squirrel.SelectBuilder {
	return w.s.sb.Select(workColumns...).
		From("works").
		OrderBy("created_at ASC", "id ASC")
}

func (w *workStore) Get(ctx context.Context, id int64) (*models.Work, error) {
	sql, args, err := w.s.sb.Select(workColumns...).
		From("works").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get work query: %w", err)
	}

	work, err := scanWork(w.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("workID", id).Msg("Error scanning work row")
		return nil, fmt.Errorf("error getting work by ID: %w", err)
	}
	return work, nil
}

func (w *workStore) List(ctx context.Context) ([]models.Work, error) {
	return w.queryWorks(ctx, w.baseSelect())
}

func (w *workStore) ListByCategory(ctx context.Context, category string) ([]models.Work, error) {
	return w.queryWorks(ctx, w.baseSelect().Where(squirrel.Eq{"category": category}))
}

func (w *workStore) ListByAuthor(ctx context.Context, authorID int64) ([]models.Work, error) {
	return w.queryWorks(ctx, w.baseSelect().Where(squirrel.Eq{"author_id": authorID}))
}

func (w *workStore) Create(ctx context.Context, work *models.Work) error {
	// Approval is granted through updates only
	work.Approved = false
	if work.BeneficiariesCount < 0 {
		work.BeneficiariesCount = 0
	}
	if work.Images == nil {
		work.Images = []string{}
	}
	work.CreatedAt = now()

	sql, args, err := w.s.sb.Insert("works").
		Columns("title", "description", "category", "author_id", "work_date", "beneficiaries_count", "images", "approved", "created_at").
		Values(work.Title, work.Description, work.Category, work.AuthorID, work.WorkDate,
			work.BeneficiariesCount, work.Images, work.Approved, work.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create work query: %w", err)
	}

	if err := w.s.pool.QueryRow(ctx, sql, args...).Scan(&work.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create work query")
		return fmt.Errorf("error creating work: %w", err)
	}
	return nil
}

func (w *workStore) Update(ctx context.Context, id int64, patch storage.WorkPatch) (*models.Work, error) {
	setMap := map[string]interface{}{}
	if patch.Title != nil {
		setMap["title"] = *patch.Title
	}
	if patch.Description != nil {
		setMap["description"] = *patch.Description
	}
	if patch.Category != nil {
		setMap["category"] = *patch.Category
	}
	if patch.AuthorID != nil {
		setMap["author_id"] = *patch.AuthorID
	}
	if patch.WorkDate != nil {
		setMap["work_date"] = *patch.WorkDate
	}
	if patch.BeneficiariesCount != nil {
		setMap["beneficiaries_count"] = *patch.BeneficiariesCount
	}
	if patch.Images != nil {
		setMap["images"] = *patch.Images
	}
	if patch.Approved != nil {
		setMap["approved"] = *patch.Approved
	}

	if len(setMap) == 0 {
		return w.Get(ctx, id)
	}

	sql, args, err := w.s.sb.Update("works").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(workColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update work query: %w", err)
	}

	work, err := scanWork(w.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("workID", id).Msg("Error executing update work query")
		return nil, fmt.Errorf("error updating work: %w", err)
	}
	return work, nil
}

func (w *workStore) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := w.s.sb.Delete("works").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete work query: %w", err)
	}

	cmdTag, err := w.s.pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("workID", id).Msg("Error executing delete work query")
		return false, fmt.Errorf("error deleting work: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
