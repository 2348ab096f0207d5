package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/output"
)

var _ output.ActivityRepository = (*ActivityRepository)(nil)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO activities (name, event_id, status) VALUES ($1, $2, $3)
		 RETURNING activity_id, created_at, updated_at`,
		activity.Name, int64(activity.EventID), activity.Status,
	).Scan(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (*entities.Activity, error) {
	var activity entities.Activity
	err := r.pool.QueryRow(ctx,
		`SELECT activity_id, name, event_id, status, created_at, updated_at FROM activities WHERE activity_id = $1`,
		int64(id),
	).Scan(&activity.ID, &activity.Name, &activity.EventID, &activity.Status, &activity.CreatedAt, &activity.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	if err := r.attachPrerequisites(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) ListByEvent(ctx context.Context, eventID uint) ([]entities.Activity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT activity_id, name, event_id, status, created_at, updated_at FROM activities
		 WHERE event_id = $1 ORDER BY activity_id`,
		int64(eventID),
	)
	if err != nil {
		return nil, fmt.Errorf("list activities by event: %w", err)
	}
	defer rows.Close()

	var out []entities.Activity
	for rows.Next() {
		var activity entities.Activity
		if err := rows.Scan(&activity.ID, &activity.Name, &activity.EventID, &activity.Status, &activity.CreatedAt, &activity.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	rows.Close()
	for i := range out {
		if err := r.attachPrerequisites(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ActivityRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE activities SET status = $2, updated_at = now() WHERE activity_id = $1`,
		int64(id), status,
	)
	if err != nil {
		return fmt.Errorf("update activity status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) SetPrerequisites(ctx context.Context, id uint, prerequisiteIDs []uint) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin set prerequisites: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM activity_prerequisites WHERE activity_id = $1`, int64(id),
	); err != nil {
		return fmt.Errorf("clear prerequisites: %w", err)
	}
	for _, prereqID := range prerequisiteIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO activity_prerequisites (activity_id, prerequisite_id) VALUES ($1, $2)`,
			int64(id), int64(prereqID),
		)
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		if err != nil {
			return fmt.Errorf("insert prerequisite: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit set prerequisites: %w", err)
	}
	return nil
}

func (r *ActivityRepository) attachPrerequisites(ctx context.Context, activity *entities.Activity) error {
	rows, err := r.pool.Query(ctx,
		`SELECT prerequisite_id FROM activity_prerequisites WHERE activity_id = $1 ORDER BY prerequisite_id`,
		int64(activity.ID),
	)
	if err != nil {
		return fmt.Errorf("get prerequisites: %w", err)
	}
	defer rows.Close()

	activity.Prerequisites = nil
	for rows.Next() {
		var prereqID uint
		if err := rows.Scan(&prereqID); err != nil {
			return fmt.Errorf("scan prerequisite: %w", err)
		}
		activity.Prerequisites = append(activity.Prerequisites, prereqID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate prerequisites: %w", err)
	}
	return nil
}
