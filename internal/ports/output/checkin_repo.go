package output

import (
	"context"

	"qrlogger/internal/domain/entities"
)

type CheckinRepository interface {
	// Record inserts a check-in unless one already exists for the
	// (ParticipantID, ActivityID) pair. The check-then-insert is a single
	// atomic operation: under concurrent calls exactly one row is created.
	// On success the record's ID and timestamps are filled in. If the pair
	// already has a row, the record is overwritten with the existing row and
	// domain.ErrAlreadyCheckedIn is returned. A missing participant or
	// activity reference yields domain.ErrReferenceNotFound.
	Record(ctx context.Context, checkin *entities.Checkin) error
	// ListByActivity returns check-ins ordered by CheckedInAt ascending.
	ListByActivity(ctx context.Context, activityID uint) ([]entities.Checkin, error)
	ListByParticipant(ctx context.Context, participantID uint) ([]entities.Checkin, error)
	CountByActivity(ctx context.Context, activityID uint) (int64, error)
}
