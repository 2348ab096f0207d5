package application

import (
	"context"
	"errors"
	"testing"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
)

func newActivityFixture(t *testing.T) (*ActivityService, *fakeActivityRepo, *entities.Event) {
	t.Helper()
	events := newFakeEventRepo()
	activities := newFakeActivityRepo()
	event := &entities.Event{Name: "Hackathon 2026"}
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return NewActivityService(activities, events), activities, event
}

func TestCreateActivityDefaultsToUpcoming(t *testing.T) {
	t.Parallel()

	service, _, event := newActivityFixture(t)
	activity, err := service.CreateActivity(context.Background(), "Registration", event.ID, "", nil)
	if err != nil {
		t.Fatalf("create activity: %v", err)
	}
	if activity.Status != domain.StatusUpcoming {
		t.Fatalf("status = %q, want %q", activity.Status, domain.StatusUpcoming)
	}
}

func TestCreateActivityUnknownEvent(t *testing.T) {
	t.Parallel()

	service, _, _ := newActivityFixture(t)
	_, err := service.CreateActivity(context.Background(), "Registration", 99, domain.StatusActive, nil)
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("err = %v, want %v", err, domain.ErrEventNotFound)
	}
}

func TestSetActivityStatusForwardOnly(t *testing.T) {
	t.Parallel()

	service, _, event := newActivityFixture(t)
	activity, err := service.CreateActivity(context.Background(), "Workshop", event.ID, domain.StatusUpcoming, nil)
	if err != nil {
		t.Fatalf("create activity: %v", err)
	}

	updated, err := service.SetActivityStatus(context.Background(), activity.ID, domain.StatusActive)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if updated.Status != domain.StatusActive {
		t.Fatalf("status = %q, want %q", updated.Status, domain.StatusActive)
	}

	if _, err := service.SetActivityStatus(context.Background(), activity.ID, domain.StatusClosed); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, err = service.SetActivityStatus(context.Background(), activity.ID, domain.StatusActive)
	if !errors.Is(err, domain.ErrStatusRegression) {
		t.Fatalf("err = %v, want %v", err, domain.ErrStatusRegression)
	}

	_, err = service.SetActivityStatus(context.Background(), activity.ID, "cancelled")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("err = %v, want %v", err, domain.ErrInvalidStatus)
	}
}

func TestSetActivityPrerequisitesRejectsCycles(t *testing.T) {
	t.Parallel()

	service, _, event := newActivityFixture(t)
	ctx := context.Background()

	a, err := service.CreateActivity(ctx, "A", event.ID, domain.StatusUpcoming, nil)
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := service.CreateActivity(ctx, "B", event.ID, domain.StatusUpcoming, nil)
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	c, err := service.CreateActivity(ctx, "C", event.ID, domain.StatusUpcoming, nil)
	if err != nil {
		t.Fatalf("create c: %v", err)
	}

	if _, err := service.SetActivityPrerequisites(ctx, b.ID, []uint{a.ID}); err != nil {
		t.Fatalf("b -> a: %v", err)
	}
	if _, err := service.SetActivityPrerequisites(ctx, c.ID, []uint{b.ID}); err != nil {
		t.Fatalf("c -> b: %v", err)
	}

	// a -> c would close the loop a -> c -> b -> a.
	_, err = service.SetActivityPrerequisites(ctx, a.ID, []uint{c.ID})
	if !errors.Is(err, domain.ErrPrerequisiteCycle) {
		t.Fatalf("err = %v, want %v", err, domain.ErrPrerequisiteCycle)
	}

	// Direct self-reference.
	_, err = service.SetActivityPrerequisites(ctx, a.ID, []uint{a.ID})
	if !errors.Is(err, domain.ErrPrerequisiteCycle) {
		t.Fatalf("err = %v, want %v", err, domain.ErrPrerequisiteCycle)
	}

	// Unknown prerequisite.
	_, err = service.SetActivityPrerequisites(ctx, a.ID, []uint{99})
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("err = %v, want %v", err, domain.ErrReferenceNotFound)
	}
}

func TestIsOpenForCheckin(t *testing.T) {
	t.Parallel()

	service, _, event := newActivityFixture(t)
	ctx := context.Background()

	activity, err := service.CreateActivity(ctx, "Workshop", event.ID, domain.StatusUpcoming, nil)
	if err != nil {
		t.Fatalf("create activity: %v", err)
	}
	open, err := service.IsOpenForCheckin(ctx, activity.ID)
	if err != nil {
		t.Fatalf("is open: %v", err)
	}
	if open {
		t.Fatal("upcoming activity must not be open for check-in")
	}

	if _, err := service.SetActivityStatus(ctx, activity.ID, domain.StatusActive); err != nil {
		t.Fatalf("activate: %v", err)
	}
	open, err = service.IsOpenForCheckin(ctx, activity.ID)
	if err != nil {
		t.Fatalf("is open: %v", err)
	}
	if !open {
		t.Fatal("active activity must be open for check-in")
	}
}
