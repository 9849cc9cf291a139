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

type newsStore struct {
	s *Store
}

var newsColumns = []string{"id", "title", "content", "summary", "author_id", "related_work_ids", "published", "created_at"}

func scanNews(row pgx.Row) (*models.News, error) {
	item := &models.News{}
	err := row.Scan(&item.ID, &item.Title, &item.Content, &item.Summary, &item.AuthorID,
		&item.RelatedWorkIDs, &item.Published, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (n *newsStore) queryNews(ctx context.Context, builder squirrel.SelectBuilder) ([]models.News, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build news query: %w", err)
	}

	rows, err := n.s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	news := []models.News{}
	for rows.Next() {
		item, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		news = append(news, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}
	return news, nil
}

func (n *newsStore) baseSelect() squirrel.SelectBuilder {
	return n.s.sb.Select(newsColumns...).
		From("news").
		OrderBy("created_at ASC", "id ASC")
}

func (n *newsStore) Get(ctx context.Context, id int64) (*models.News, error) {
	sql, args, err := n.s.sb.Select(newsColumns...).
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	item, err := scanNews(n.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("newsID", id).Msg("Error scanning news row")
		return nil, fmt.Errorf("error getting news by ID: %w", err)
	}
	return item, nil
}

func (n *newsStore) List(ctx context.Context) ([]models.News, error) {
	return n.queryNews(ctx, n.baseSelect())
}

func (n *newsStore) ListPublished(ctx context.Context) ([]models.News, error) {
	return n.queryNews(ctx, n.baseSelect().Where(squirrel.Eq{"published": true}))
}

func (n *newsStore) Create(ctx context.Context, item *models.News) error {
	// Publishing happens through updates only
	item.Published = false
	if item.RelatedWorkIDs == nil {
		item.RelatedWorkIDs = []int64{}
	}
	item.CreatedAt = now()

	sql, args, err := n.s.sb.Insert("news").
		Columns("title", "content", "summary", "author_id", "related_work_ids", "published", "created_at").
		Values(item.Title, item.Content, item.Summary, item.AuthorID, item.RelatedWorkIDs,
			item.Published, item.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create news query: %w", err)
	}

	if err := n.s.pool.QueryRow(ctx, sql, args...).Scan(&item.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return fmt.Errorf("error creating news: %w", err)
	}
	return nil
}

func (n *newsStore) Update(ctx context.Context, id int64, patch storage.NewsPatch) (*models.News, error) {
	setMap := map[string]interface{}{}
	if patch.Title != nil {
		setMap["title"] = *patch.Title
	}
	if patch.Content != nil {
		setMap["content"] = *patch.Content
	}
	if patch.Summary != nil {
		setMap["summary"] = *patch.Summary
	}
	if patch.AuthorID != nil {
		setMap["author_id"] = *patch.AuthorID
	}
	if patch.RelatedWorkIDs != nil {
		setMap["related_work_ids"] = *patch.RelatedWorkIDs
	}
	if patch.Published != nil {
		setMap["published"] = *patch.Published
	}

	if len(setMap) == 0 {
		return n.Get(ctx, id)
	}

	sql, args, err := n.s.sb.Update("news").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(newsColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update news query: %w", err)
	}

	item, err := scanNews(n.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("newsID", id).Msg("Error executing update news query")
		return nil, fmt.Errorf("error updating news: %w", err)
	}
	return item, nil
}

func (n *newsStore) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := n.s.sb.Delete("news").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete news query: %w", err)
	}

	cmdTag, err := n.s.pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", id).Msg("Error executing delete news query")
		return false, fmt.Errorf("error deleting news: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
