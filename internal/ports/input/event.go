package input

import (
	"context"

	"qrlogger/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, name string) (*entities.Event, error)
	GetEventByID(ctx context.Context, id uint) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
}
