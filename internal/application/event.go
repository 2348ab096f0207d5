package application

import (
	"context"
	"fmt"
	"strings"

	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/input"
	"qrlogger/internal/ports/output"
)

type EventService struct {
	eventRepo output.EventRepository
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) CreateEvent(ctx context.Context, name string) (*entities.Event, error) {
	event := &entities.Event{Name: strings.TrimSpace(name)}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uint) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.List(ctx)
}

var _ input.EventUseCase = (*EventService)(nil)
