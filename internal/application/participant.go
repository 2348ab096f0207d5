package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/input"
	"qrlogger/internal/ports/output"
)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
	eventRepo       output.EventRepository
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	eventRepo output.EventRepository,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
	}
}

// RegisterParticipant creates a participant under an existing event and
// assigns a fresh public token. The token is the only identity ever encoded
// into a badge; it never changes after this call.
func (s *ParticipantService) RegisterParticipant(ctx context.Context, displayName, givenName, familyName string, eventID uint) (*entities.Participant, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, domain.ErrEventNotFound
	}
	participant := &entities.Participant{
		PublicToken: uuid.NewString(),
		DisplayName: strings.TrimSpace(displayName),
		GivenName:   strings.TrimSpace(givenName),
		FamilyName:  strings.TrimSpace(familyName),
		EventID:     eventID,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	return participant, nil
}

func (s *ParticipantService) GetParticipantByID(ctx context.Context, id uint) (*entities.Participant, error) {
	return s.participantRepo.FindByID(ctx, id)
}

func (s *ParticipantService) SearchParticipantsByFamilyName(ctx context.Context, substring string) ([]entities.Participant, error) {
	return s.participantRepo.SearchByFamilyName(ctx, strings.TrimSpace(substring))
}

func (s *ParticipantService) GetEventRoster(ctx context.Context, eventID uint) ([]entities.Participant, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, domain.ErrEventNotFound
	}
	return s.participantRepo.ListByEvent(ctx, eventID)
}

// UpdateProfile applies a partial update to the mutable profile fields.
func (s *ParticipantService) UpdateProfile(ctx context.Context, participantID uint, update input.ProfileUpdate) (*entities.Participant, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if update.DisplayName != nil {
		participant.DisplayName = strings.TrimSpace(*update.DisplayName)
	}
	if update.GivenName != nil {
		participant.GivenName = strings.TrimSpace(*update.GivenName)
	}
	if update.FamilyName != nil {
		participant.FamilyName = strings.TrimSpace(*update.FamilyName)
	}
	if err := s.participantRepo.UpdateProfile(ctx, participant); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return participant, nil
}

var _ input.ParticipantUseCase = (*ParticipantService)(nil)
