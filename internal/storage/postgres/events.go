package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/pkg/logger"
	"github.com/ecem/goodworks/internal/storage"
)

type eventStore struct {
	s *Store
}

var eventColumns = []string{"id", "title", "description", "event_date", "location", "created_at"}

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(&event.ID, &event.Title, &event.Description, &event.EventDate, &event.Location, &event.CreatedAt)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (e *eventStore) queryEvents(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Event, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build events query: %w", err)
	}

	rows, err := e.s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func (e *eventStore) baseSelect() squirrel.SelectBuilder {
	return e.s.sb.Select(eventColumns...).
		From("events").
		OrderBy("event_date ASC", "id ASC")
}

func (e *eventStore) Get(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := e.s.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(e.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}
	return event, nil
}

func (e *eventStore) List(ctx context.Context) ([]models.Event, error) {
	return e.queryEvents(ctx, e.baseSelect())
}

func (e *eventStore) ListUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	return e.queryEvents(ctx, e.baseSelect().Where(squirrel.Gt{"event_date": now}))
}

func (e *eventStore) Create(ctx context.Context, event *models.Event) error {
	event.CreatedAt = now()

	sql, args, err := e.s.sb.Insert("events").
		Columns("title", "description", "event_date", "location", "created_at").
		Values(event.Title, event.Description, event.EventDate, event.Location, event.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := e.s.pool.QueryRow(ctx, sql, args...).Scan(&event.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

func (e *eventStore) Update(ctx context.Context, id int64, patch storage.EventPatch) (*models.Event, error) {
	setMap := map[string]interface{}{}
	if patch.Title != nil {
		setMap["title"] = *patch.Title
	}
	if patch.Description != nil {
		setMap["description"] = *patch.Description
	}
	if patch.EventDate != nil {
		setMap["event_date"] = *patch.EventDate
	}
	if patch.Location != nil {
		setMap["location"] = *patch.Location
	}

	if len(setMap) == 0 {
		return e.Get(ctx, id)
	}

	sql, args, err := e.s.sb.Update("events").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(eventColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update event query: %w", err)
	}

	event, err := scanEvent(e.s.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing update event query")
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return event, nil
}

func (e *eventStore) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := e.s.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := e.s.pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete event query")
		return false, fmt.Errorf("error deleting event: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
