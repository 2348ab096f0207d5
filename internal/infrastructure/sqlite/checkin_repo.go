package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/output"
)

var _ output.CheckinRepository = (*CheckinRepository)(nil)

type CheckinRepository struct {
	store *Store
}

func NewCheckinRepository(store *Store) *CheckinRepository {
	return &CheckinRepository{store: store}
}

const checkinColumns = `checkin_id, participant_id, activity_id, checked_in_at, created_at`

// Record performs the atomic check-then-insert. The insert and the
// conflict-path read run inside one immediate transaction, so concurrent
// scans of the same badge leave exactly one row and the losers read it back.
func (r *CheckinRepository) Record(ctx context.Context, checkin *entities.Checkin) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record check-in: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO checkins (participant_id, activity_id, checked_in_at, created_at)
		 VALUES (?, ?, ?, ?)`,
		int64(checkin.ParticipantID), int64(checkin.ActivityID),
		toMillis(checkin.CheckedInAt), toMillis(checkin.CheckedInAt),
	)
	if isForeignKeyViolation(err) {
		return domain.ErrReferenceNotFound
	}
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}

	if affected == 0 {
		// Conflict: hand back the surviving row.
		existing, err := r.findByPair(ctx, tx, checkin.ParticipantID, checkin.ActivityID)
		if err != nil {
			return fmt.Errorf("load existing check-in: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit record check-in: %w", err)
		}
		*checkin = *existing
		return domain.ErrAlreadyCheckedIn
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record check-in: %w", err)
	}
	checkin.ID = uint(id)
	checkin.CheckedInAt = checkin.CheckedInAt.UTC()
	checkin.CreatedAt = checkin.CheckedInAt
	return nil
}

func (r *CheckinRepository) findByPair(ctx context.Context, tx *sql.Tx, participantID, activityID uint) (*entities.Checkin, error) {
	var (
		checkin            entities.Checkin
		checkedIn, created int64
	)
	err := tx.QueryRowContext(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE participant_id = ? AND activity_id = ?`,
		int64(participantID), int64(activityID),
	).Scan(&checkin.ID, &checkin.ParticipantID, &checkin.ActivityID, &checkedIn, &created)
	if err != nil {
		return nil, err
	}
	checkin.CheckedInAt = fromMillis(checkedIn)
	checkin.CreatedAt = fromMillis(created)
	return &checkin, nil
}

func (r *CheckinRepository) ListByActivity(ctx context.Context, activityID uint) ([]entities.Checkin, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE activity_id = ? ORDER BY checked_in_at, checkin_id`,
		int64(activityID),
	)
	if err != nil {
		return nil, fmt.Errorf("list check-ins by activity: %w", err)
	}
	return collectCheckins(rows)
}

func (r *CheckinRepository) ListByParticipant(ctx context.Context, participantID uint) ([]entities.Checkin, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE participant_id = ? ORDER BY checked_in_at, checkin_id`,
		int64(participantID),
	)
	if err != nil {
		return nil, fmt.Errorf("list check-ins by participant: %w", err)
	}
	return collectCheckins(rows)
}

func (r *CheckinRepository) CountByActivity(ctx context.Context, activityID uint) (int64, error) {
	var count int64
	err := r.store.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM checkins WHERE activity_id = ?`,
		int64(activityID),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count check-ins: %w", err)
	}
	return count, nil
}

func collectCheckins(rows *sql.Rows) ([]entities.Checkin, error) {
	defer rows.Close()
	var out []entities.Checkin
	for rows.Next() {
		var (
			checkin            entities.Checkin
			checkedIn, created int64
		)
		if err := rows.Scan(&checkin.ID, &checkin.ParticipantID, &checkin.ActivityID, &checkedIn, &created); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		checkin.CheckedInAt = fromMillis(checkedIn)
		checkin.CreatedAt = fromMillis(created)
		out = append(out, checkin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check-ins: %w", err)
	}
	return out, nil
}
