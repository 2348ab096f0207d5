package input

import (
	"context"

	"qrlogger/internal/domain/entities"
)

// ProfileUpdate is a partial update of a participant's mutable fields; nil
// means "leave unchanged".
type ProfileUpdate struct {
	DisplayName *string
	GivenName   *string
	FamilyName  *string
}

type ParticipantUseCase interface {
	RegisterParticipant(ctx context.Context, displayName, givenName, familyName string, eventID uint) (*entities.Participant, error)
	GetParticipantByID(ctx context.Context, id uint) (*entities.Participant, error)
	SearchParticipantsByFamilyName(ctx context.Context, substring string) ([]entities.Participant, error)
	GetEventRoster(ctx context.Context, eventID uint) ([]entities.Participant, error)
	UpdateProfile(ctx context.Context, participantID uint, update ProfileUpdate) (*entities.Participant, error)
}
