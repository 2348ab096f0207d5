package input

import (
	"context"

	"qrlogger/internal/domain/entities"
)

type ActivityUseCase interface {
	CreateActivity(ctx context.Context, name string, eventID uint, status string, prerequisiteIDs []uint) (*entities.Activity, error)
	GetActivityByID(ctx context.Context, id uint) (*entities.Activity, error)
	ListEventActivities(ctx context.Context, eventID uint) ([]entities.Activity, error)
	SetActivityStatus(ctx context.Context, id uint, status string) (*entities.Activity, error)
	SetActivityPrerequisites(ctx context.Context, id uint, prerequisiteIDs []uint) (*entities.Activity, error)
	IsOpenForCheckin(ctx context.Context, id uint) (bool, error)
}
