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

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository on pgx.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

const participantColumns = `participant_id, public_token, display_name, given_name, family_name, event_id, created_at, updated_at`

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO participants (public_token, display_name, given_name, family_name, event_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING participant_id, created_at, updated_at`,
		participant.PublicToken, participant.DisplayName, participant.GivenName,
		participant.FamilyName, int64(participant.EventID),
	).Scan(&participant.ID, &participant.CreatedAt, &participant.UpdatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrEventNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("create participant: public token collision: %w", err)
	}
	if err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE participant_id = $1`,
		int64(id),
	)
	participant, err := scanParticipant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get participant by id: %w", err)
	}
	return participant, nil
}

func (r *ParticipantRepository) FindByToken(ctx context.Context, token string) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE public_token = $1`,
		token,
	)
	participant, err := scanParticipant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get participant by token: %w", err)
	}
	return participant, nil
}

// SearchByFamilyName matches case-insensitively, mirroring the SQLite
// backend's LIKE collation.
func (r *ParticipantRepository) SearchByFamilyName(ctx context.Context, substring string) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE family_name ILIKE '%' || $1 || '%'`,
		substring,
	)
	if err != nil {
		return nil, fmt.Errorf("search participants: %w", err)
	}
	return collectParticipants(rows)
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID uint) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE event_id = $1 ORDER BY participant_id`,
		int64(eventID),
	)
	if err != nil {
		return nil, fmt.Errorf("list participants by event: %w", err)
	}
	return collectParticipants(rows)
}

func (r *ParticipantRepository) UpdateProfile(ctx context.Context, participant *entities.Participant) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE participants SET display_name = $2, given_name = $3, family_name = $4, updated_at = now()
		 WHERE participant_id = $1
		 RETURNING updated_at`,
		int64(participant.ID), participant.DisplayName, participant.GivenName, participant.FamilyName,
	).Scan(&participant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrParticipantNotFound
	}
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	return nil
}

func scanParticipant(row pgx.Row) (*entities.Participant, error) {
	var participant entities.Participant
	err := row.Scan(
		&participant.ID, &participant.PublicToken, &participant.DisplayName,
		&participant.GivenName, &participant.FamilyName, &participant.EventID,
		&participant.CreatedAt, &participant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func collectParticipants(rows pgx.Rows) ([]entities.Participant, error) {
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
