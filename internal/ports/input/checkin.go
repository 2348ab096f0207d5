package input

import (
	"context"

	"qrlogger/internal/domain/entities"
)

// ScanOutcome is the terminal state of one scan attempt.
type ScanOutcome string

const (
	OutcomeSuccess             ScanOutcome = "success"
	OutcomeAlreadyCheckedIn    ScanOutcome = "already_checked_in"
	OutcomeParticipantNotFound ScanOutcome = "participant_not_found"
	OutcomeActivityNotEligible ScanOutcome = "activity_not_eligible"
	OutcomeStorageFailure      ScanOutcome = "storage_failure"
)

// ScanResult carries the outcome of a scan attempt plus whatever was resolved
// along the way. Participant is set from Resolving onward; Record is set on
// Success and AlreadyCheckedIn.
type ScanResult struct {
	Outcome     ScanOutcome
	Reason      string
	Participant *entities.Participant
	Record      *entities.Checkin
}

type CheckinUseCase interface {
	// SubmitScan runs one scan attempt against the given activity. An empty
	// token is the explicit "no symbol decoded" signal. The error is non-nil
	// only alongside OutcomeStorageFailure.
	SubmitScan(ctx context.Context, activityID uint, token string) (*ScanResult, error)
	// SubmitCapture decodes a captured image first, then behaves like
	// SubmitScan.
	SubmitCapture(ctx context.Context, activityID uint, image []byte) (*ScanResult, error)
	ActivityAttendance(ctx context.Context, activityID uint) ([]entities.Checkin, error)
	ParticipantHistory(ctx context.Context, participantID uint) ([]entities.Checkin, error)
	ActivityAttendanceCount(ctx context.Context, activityID uint) (int64, error)
}
