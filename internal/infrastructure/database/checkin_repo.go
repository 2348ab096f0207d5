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

var _ output.CheckinRepository = (*CheckinRepository)(nil)

type CheckinRepository struct {
	pool *pgxpool.Pool
}

func NewCheckinRepository(pool *pgxpool.Pool) *CheckinRepository {
	return &CheckinRepository{pool: pool}
}

const checkinColumns = `checkin_id, participant_id, activity_id, checked_in_at, created_at`

// Record relies on the UNIQUE(participant_id, activity_id) index: the insert
// either creates the row or hits the conflict clause, atomically. Check-in
// rows are never deleted, so the conflict-path read always finds the winner.
func (r *CheckinRepository) Record(ctx context.Context, checkin *entities.Checkin) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO checkins (participant_id, activity_id, checked_in_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (participant_id, activity_id) DO NOTHING
		 RETURNING checkin_id, created_at`,
		int64(checkin.ParticipantID), int64(checkin.ActivityID), checkin.CheckedInAt,
	).Scan(&checkin.ID, &checkin.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, err := r.findByPair(ctx, checkin.ParticipantID, checkin.ActivityID)
		if err != nil {
			return fmt.Errorf("load existing check-in: %w", err)
		}
		*checkin = *existing
		return domain.ErrAlreadyCheckedIn
	}
	if isForeignKeyViolation(err) {
		return domain.ErrReferenceNotFound
	}
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	return nil
}

func (r *CheckinRepository) findByPair(ctx context.Context, participantID, activityID uint) (*entities.Checkin, error) {
	var checkin entities.Checkin
	err := r.pool.QueryRow(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE participant_id = $1 AND activity_id = $2`,
		int64(participantID), int64(activityID),
	).Scan(&checkin.ID, &checkin.ParticipantID, &checkin.ActivityID, &checkin.CheckedInAt, &checkin.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (r *CheckinRepository) ListByActivity(ctx context.Context, activityID uint) ([]entities.Checkin, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE activity_id = $1 ORDER BY checked_in_at, checkin_id`,
		int64(activityID),
	)
	if err != nil {
		return nil, fmt.Errorf("list check-ins by activity: %w", err)
	}
	return collectCheckins(rows)
}

func (r *CheckinRepository) ListByParticipant(ctx context.Context, participantID uint) ([]entities.Checkin, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE participant_id = $1 ORDER BY checked_in_at, checkin_id`,
		int64(participantID),
	)
	if err != nil {
		return nil, fmt.Errorf("list check-ins by participant: %w", err)
	}
	return collectCheckins(rows)
}

func (r *CheckinRepository) CountByActivity(ctx context.Context, activityID uint) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(1) FROM checkins WHERE activity_id = $1`,
		int64(activityID),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count check-ins: %w", err)
	}
	return count, nil
}

func collectCheckins(rows pgx.Rows) ([]entities.Checkin, error) {
	defer rows.Close()
	var out []entities.Checkin
	for rows.Next() {
		var checkin entities.Checkin
		if err := rows.Scan(&checkin.ID, &checkin.ParticipantID, &checkin.ActivityID, &checkin.CheckedInAt, &checkin.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		out = append(out, checkin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check-ins: %w", err)
	}
	return out, nil
}
