package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	now := time.Now().UTC()
	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO events (name, created_at, updated_at) VALUES (?, ?, ?)`,
		event.Name, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = uint(id)
	event.CreatedAt = now
	event.UpdatedAt = now
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	var (
		event            entities.Event
		created, updated int64
	)
	err := r.store.db.QueryRowContext(ctx,
		`SELECT event_id, name, created_at, updated_at FROM events WHERE event_id = ?`,
		int64(id),
	).Scan(&event.ID, &event.Name, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	event.CreatedAt = fromMillis(created)
	event.UpdatedAt = fromMillis(updated)
	return &event, nil
}

func (r *EventRepository) List(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT event_id, name, created_at, updated_at FROM events ORDER BY event_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		var (
			event            entities.Event
			created, updated int64
		)
		if err := rows.Scan(&event.ID, &event.Name, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.CreatedAt = fromMillis(created)
		event.UpdatedAt = fromMillis(updated)
		out = append(out, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}
