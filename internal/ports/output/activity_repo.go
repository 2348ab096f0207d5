package output

import (
	"context"

	"qrlogger/internal/domain/entities"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entities.Activity) error
	FindByID(ctx context.Context, id uint) (*entities.Activity, error)
	ListByEvent(ctx context.Context, eventID uint) ([]entities.Activity, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	// SetPrerequisites replaces the prerequisite set of an activity.
	SetPrerequisites(ctx context.Context, id uint, prerequisiteIDs []uint) error
}
