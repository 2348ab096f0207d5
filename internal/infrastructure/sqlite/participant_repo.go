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

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

type ParticipantRepository struct {
	store *Store
}

func NewParticipantRepository(store *Store) *ParticipantRepository {
	return &ParticipantRepository{store: store}
}

const participantColumns = `participant_id, public_token, display_name, given_name, family_name, event_id, created_at, updated_at`

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	now := time.Now().UTC()
	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO participants (public_token, display_name, given_name, family_name, event_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		participant.PublicToken, participant.DisplayName, participant.GivenName,
		participant.FamilyName, int64(participant.EventID), toMillis(now), toMillis(now),
	)
	if isForeignKeyViolation(err) {
		return domain.ErrEventNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("create participant: public token collision: %w", err)
	}
	if err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	participant.ID = uint(id)
	participant.CreatedAt = now
	participant.UpdatedAt = now
	return nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (*entities.Participant, error) {
	row := r.store.db.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE participant_id = ?`,
		int64(id),
	)
	participant, err := scanParticipant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get participant by id: %w", err)
	}
	return participant, nil
}

func (r *ParticipantRepository) FindByToken(ctx context.Context, token string) (*entities.Participant, error) {
	row := r.store.db.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE public_token = ?`,
		token,
	)
	participant, err := scanParticipant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get participant by token: %w", err)
	}
	return participant, nil
}

// SearchByFamilyName matches case-insensitively; SQLite's default LIKE
// collation already folds ASCII case.
func (r *ParticipantRepository) SearchByFamilyName(ctx context.Context, substring string) ([]entities.Participant, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE family_name LIKE '%' || ? || '%'`,
		substring,
	)
	if err != nil {
		return nil, fmt.Errorf("search participants: %w", err)
	}
	return collectParticipants(rows)
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID uint) ([]entities.Participant, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE event_id = ? ORDER BY participant_id`,
		int64(eventID),
	)
	if err != nil {
		return nil, fmt.Errorf("list participants by event: %w", err)
	}
	return collectParticipants(rows)
}

func (r *ParticipantRepository) UpdateProfile(ctx context.Context, participant *entities.Participant) error {
	now := time.Now().UTC()
	res, err := r.store.db.ExecContext(ctx,
		`UPDATE participants SET display_name = ?, given_name = ?, family_name = ?, updated_at = ?
		 WHERE participant_id = ?`,
		participant.DisplayName, participant.GivenName, participant.FamilyName,
		toMillis(now), int64(participant.ID),
	)
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	if affected == 0 {
		return domain.ErrParticipantNotFound
	}
	participant.UpdatedAt = now
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row rowScanner) (*entities.Participant, error) {
	var (
		participant      entities.Participant
		created, updated int64
	)
	err := row.Scan(
		&participant.ID, &participant.PublicToken, &participant.DisplayName,
		&participant.GivenName, &participant.FamilyName, &participant.EventID,
		&created, &updated,
	)
	if err != nil {
		return nil, err
	}
	participant.CreatedAt = fromMillis(created)
	participant.UpdatedAt = fromMillis(updated)
	return &participant, nil
}

func collectParticipants(rows *sql.Rows) ([]entities.Participant, error) {
	defer rows.Close()
	var out []entities.Participant
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, *participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return out, nil
}
