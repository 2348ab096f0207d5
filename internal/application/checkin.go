package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/input"
	"qrlogger/internal/ports/output"
)

// ReasonNoSymbol distinguishes "nothing to decode" from "decoded but unknown"
// in the ParticipantNotFound outcome.
const (
	ReasonNoSymbol        = "no symbol found"
	ReasonUnknownToken    = "token does not match any participant"
	ReasonActivityMissing = "activity does not exist"
	ReasonActivityClosed  = "activity is not open for check-in"
	ReasonEventMismatch   = "participant belongs to a different event"
)

// CheckinService orchestrates token resolution, eligibility validation and the
// ledger write for one scan attempt.
type CheckinService struct {
	participantRepo output.ParticipantRepository
	activityRepo    output.ActivityRepository
	checkinRepo     output.CheckinRepository
	decoder         output.Decoder
}

func NewCheckinService(
	participantRepo output.ParticipantRepository,
	activityRepo output.ActivityRepository,
	checkinRepo output.CheckinRepository,
	decoder output.Decoder,
) *CheckinService {
	return &CheckinService{
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
		checkinRepo:     checkinRepo,
		decoder:         decoder,
	}
}

// SubmitScan runs one scan attempt. An empty token is the explicit "no symbol
// decoded" signal from the capture side. The returned error is non-nil only
// when the outcome is OutcomeStorageFailure; every expected miss is folded
// into the result instead.
func (s *CheckinService) SubmitScan(ctx context.Context, activityID uint, token string) (*input.ScanResult, error) {
	if token == "" {
		return &input.ScanResult{
			Outcome: input.OutcomeParticipantNotFound,
			Reason:  ReasonNoSymbol,
		}, nil
	}

	participant, err := s.participantRepo.FindByToken(ctx, token)
	if errors.Is(err, domain.ErrParticipantNotFound) {
		return &input.ScanResult{
			Outcome: input.OutcomeParticipantNotFound,
			Reason:  ReasonUnknownToken,
		}, nil
	}
	if err != nil {
		return s.storageFailure(nil, fmt.Errorf("resolve token: %w", err))
	}

	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if errors.Is(err, domain.ErrActivityNotFound) {
		return &input.ScanResult{
			Outcome:     input.OutcomeActivityNotEligible,
			Reason:      ReasonActivityMissing,
			Participant: participant,
		}, nil
	}
	if err != nil {
		return s.storageFailure(participant, fmt.Errorf("load activity: %w", err))
	}
	if activity.EventID != participant.EventID {
		return &input.ScanResult{
			Outcome:     input.OutcomeActivityNotEligible,
			Reason:      ReasonEventMismatch,
			Participant: participant,
		}, nil
	}
	if !activity.IsOpenForCheckin() {
		return &input.ScanResult{
			Outcome:     input.OutcomeActivityNotEligible,
			Reason:      ReasonActivityClosed,
			Participant: participant,
		}, nil
	}

	record := &entities.Checkin{
		ParticipantID: participant.ID,
		ActivityID:    activity.ID,
		CheckedInAt:   time.Now().UTC(),
	}
	err = s.checkinRepo.Record(ctx, record)
	switch {
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return &input.ScanResult{
			Outcome:     input.OutcomeAlreadyCheckedIn,
			Participant: participant,
			Record:      record,
		}, nil
	case errors.Is(err, domain.ErrReferenceNotFound):
		// Both references were just resolved; losing one mid-flight means
		// the stores disagree with each other.
		return s.storageFailure(participant, fmt.Errorf("record check-in: %w", err))
	case err != nil:
		return s.storageFailure(participant, fmt.Errorf("record check-in: %w", err))
	}
	return &input.ScanResult{
		Outcome:     input.OutcomeSuccess,
		Participant: participant,
		Record:      record,
	}, nil
}

// SubmitCapture decodes a captured still image and feeds the result through
// SubmitScan. An image with no readable symbol follows the same path as an
// empty token.
func (s *CheckinService) SubmitCapture(ctx context.Context, activityID uint, image []byte) (*input.ScanResult, error) {
	if s.decoder == nil {
		return s.storageFailure(nil, errors.New("no decoder configured"))
	}
	token, found, err := s.decoder.Decode(ctx, image)
	if err != nil {
		return s.storageFailure(nil, fmt.Errorf("decode image: %w", err))
	}
	if !found {
		return s.SubmitScan(ctx, activityID, "")
	}
	return s.SubmitScan(ctx, activityID, token)
}

func (s *CheckinService) ActivityAttendance(ctx context.Context, activityID uint) ([]entities.Checkin, error) {
	if _, err := s.activityRepo.FindByID(ctx, activityID); err != nil {
		return nil, err
	}
	return s.checkinRepo.ListByActivity(ctx, activityID)
}

func (s *CheckinService) ParticipantHistory(ctx context.Context, participantID uint) ([]entities.Checkin, error) {
	if _, err := s.participantRepo.FindByID(ctx, participantID); err != nil {
		return nil, err
	}
	return s.checkinRepo.ListByParticipant(ctx, participantID)
}

func (s *CheckinService) ActivityAttendanceCount(ctx context.Context, activityID uint) (int64, error) {
	return s.checkinRepo.CountByActivity(ctx, activityID)
}

func (s *CheckinService) storageFailure(participant *entities.Participant, err error) (*input.ScanResult, error) {
	return &input.ScanResult{
		Outcome:     input.OutcomeStorageFailure,
		Reason:      err.Error(),
		Participant: participant,
	}, err
}

var _ input.CheckinUseCase = (*CheckinService)(nil)
