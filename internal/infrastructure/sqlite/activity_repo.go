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

var _ output.ActivityRepository = (*ActivityRepository)(nil)

type ActivityRepository struct {
	store *Store
}

func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{store: store}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	now := time.Now().UTC()
	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO activities (name, event_id, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		activity.Name, int64(activity.EventID), activity.Status, toMillis(now), toMillis(now),
	)
	if isForeignKeyViolation(err) {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	activity.ID = uint(id)
	activity.CreatedAt = now
	activity.UpdatedAt = now
	return nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (*entities.Activity, error) {
	var (
		activity         entities.Activity
		created, updated int64
	)
	err := r.store.db.QueryRowContext(ctx,
		`SELECT activity_id, name, event_id, status, created_at, updated_at FROM activities WHERE activity_id = ?`,
		int64(id),
	).Scan(&activity.ID, &activity.Name, &activity.EventID, &activity.Status, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	activity.CreatedAt = fromMillis(created)
	activity.UpdatedAt = fromMillis(updated)
	if err := r.attachPrerequisites(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) ListByEvent(ctx context.Context, eventID uint) ([]entities.Activity, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT activity_id, name, event_id, status, created_at, updated_at FROM activities
		 WHERE event_id = ? ORDER BY activity_id`,
		int64(eventID),
	)
	if err != nil {
		return nil, fmt.Errorf("list activities by event: %w", err)
	}
	defer rows.Close()

	var out []entities.Activity
	for rows.Next() {
		var (
			activity         entities.Activity
			created, updated int64
		)
		if err := rows.Scan(&activity.ID, &activity.Name, &activity.EventID, &activity.Status, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activity.CreatedAt = fromMillis(created)
		activity.UpdatedAt = fromMillis(updated)
		out = append(out, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	for i := range out {
		if err := r.attachPrerequisites(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ActivityRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res, err := r.store.db.ExecContext(ctx,
		`UPDATE activities SET status = ?, updated_at = ? WHERE activity_id = ?`,
		status, toMillis(time.Now().UTC()), int64(id),
	)
	if err != nil {
		return fmt.Errorf("update activity status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activity status: %w", err)
	}
	if affected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) SetPrerequisites(ctx context.Context, id uint, prerequisiteIDs []uint) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set prerequisites: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM activity_prerequisites WHERE activity_id = ?`, int64(id),
	); err != nil {
		return fmt.Errorf("clear prerequisites: %w", err)
	}
	for _, prereqID := range prerequisiteIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activity_prerequisites (activity_id, prerequisite_id) VALUES (?, ?)`,
			int64(id), int64(prereqID),
		)
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		if err != nil {
			return fmt.Errorf("insert prerequisite: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set prerequisites: %w", err)
	}
	return nil
}

func (r *ActivityRepository) attachPrerequisites(ctx context.Context, activity *entities.Activity) error {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT prerequisite_id FROM activity_prerequisites WHERE activity_id = ? ORDER BY prerequisite_id`,
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
