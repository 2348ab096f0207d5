package output

import (
	"context"

	"qrlogger/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
}
