package output

import (
	"context"

	"qrlogger/internal/domain/entities"
)

type ParticipantRepository interface {
	// Create persists a new participant and fills in the assigned ID and
	// timestamps. The caller supplies PublicToken and EventID.
	Create(ctx context.Context, participant *entities.Participant) error
	FindByID(ctx context.Context, id uint) (*entities.Participant, error)
	// FindByToken is an exact-match lookup. A missing token is reported as
	// domain.ErrParticipantNotFound, not a storage failure.
	FindByToken(ctx context.Context, token string) (*entities.Participant, error)
	// SearchByFamilyName matches the substring case-insensitively.
	SearchByFamilyName(ctx context.Context, substring string) ([]entities.Participant, error)
	ListByEvent(ctx context.Context, eventID uint) ([]entities.Participant, error)
	// UpdateProfile writes the mutable fields (display, given, family name)
	// of an existing participant. PublicToken and EventID are never touched.
	UpdateProfile(ctx context.Context, participant *entities.Participant) error
}
