package application

import (
	"context"
	"fmt"
	"strings"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/input"
	"qrlogger/internal/ports/output"
)

type ActivityService struct {
	activityRepo output.ActivityRepository
	eventRepo    output.EventRepository
}

func NewActivityService(
	activityRepo output.ActivityRepository,
	eventRepo output.EventRepository,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		eventRepo:    eventRepo,
	}
}

func (s *ActivityService) CreateActivity(ctx context.Context, name string, eventID uint, status string, prerequisiteIDs []uint) (*entities.Activity, error) {
	if status == "" {
		status = domain.StatusUpcoming
	}
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, domain.ErrEventNotFound
	}
	for _, id := range prerequisiteIDs {
		if _, err := s.activityRepo.FindByID(ctx, id); err != nil {
			return nil, domain.ErrReferenceNotFound
		}
	}
	activity := &entities.Activity{
		Name:    strings.TrimSpace(name),
		EventID: eventID,
		Status:  status,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	if len(prerequisiteIDs) > 0 {
		if err := s.activityRepo.SetPrerequisites(ctx, activity.ID, prerequisiteIDs); err != nil {
			return nil, fmt.Errorf("set prerequisites: %w", err)
		}
		activity.Prerequisites = prerequisiteIDs
	}
	return activity, nil
}

func (s *ActivityService) GetActivityByID(ctx context.Context, id uint) (*entities.Activity, error) {
	return s.activityRepo.FindByID(ctx, id)
}

func (s *ActivityService) ListEventActivities(ctx context.Context, eventID uint) ([]entities.Activity, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, domain.ErrEventNotFound
	}
	return s.activityRepo.ListByEvent(ctx, eventID)
}

// SetActivityStatus moves an activity along the upcoming -> active -> closed
// flow. Moving backwards is rejected.
func (s *ActivityService) SetActivityStatus(ctx context.Context, id uint, status string) (*entities.Activity, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionStatus(activity.Status, status) {
		return nil, domain.ErrStatusRegression
	}
	if err := s.activityRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	activity.Status = status
	return activity, nil
}

// SetActivityPrerequisites replaces the prerequisite set, rejecting any
// assignment that would close a cycle through the prerequisite graph.
func (s *ActivityService) SetActivityPrerequisites(ctx context.Context, id uint, prerequisiteIDs []uint) (*entities.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, prereqID := range prerequisiteIDs {
		if prereqID == id {
			return nil, domain.ErrPrerequisiteCycle
		}
		if _, err := s.activityRepo.FindByID(ctx, prereqID); err != nil {
			return nil, domain.ErrReferenceNotFound
		}
		reaches, err := s.reaches(ctx, prereqID, id, map[uint]bool{})
		if err != nil {
			return nil, err
		}
		if reaches {
			return nil, domain.ErrPrerequisiteCycle
		}
	}
	if err := s.activityRepo.SetPrerequisites(ctx, id, prerequisiteIDs); err != nil {
		return nil, fmt.Errorf("set prerequisites: %w", err)
	}
	activity.Prerequisites = prerequisiteIDs
	return activity, nil
}

// reaches walks prerequisite edges from "from" and reports whether "target"
// is reachable.
func (s *ActivityService) reaches(ctx context.Context, from, target uint, seen map[uint]bool) (bool, error) {
	if from == target {
		return true, nil
	}
	if seen[from] {
		return false, nil
	}
	seen[from] = true
	activity, err := s.activityRepo.FindByID(ctx, from)
	if err != nil {
		return false, err
	}
	for _, next := range activity.Prerequisites {
		found, err := s.reaches(ctx, next, target, seen)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

func (s *ActivityService) IsOpenForCheckin(ctx context.Context, id uint) (bool, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return activity.IsOpenForCheckin(), nil
}

var _ input.ActivityUseCase = (*ActivityService)(nil)
