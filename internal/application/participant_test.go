package application

import (
	"context"
	"errors"
	"testing"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
	"qrlogger/internal/ports/input"
)

func TestRegisterParticipantAssignsToken(t *testing.T) {
	t.Parallel()

	events := newFakeEventRepo()
	participants := newFakeParticipantRepo()
	service := NewParticipantService(participants, events)

	event := &entities.Event{Name: "Hackathon 2026"}
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	first, err := service.RegisterParticipant(context.Background(), "Grace Hopper", "Grace", "Hopper", event.ID)
	if err != nil {
		t.Fatalf("register participant: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("participant id not assigned")
	}
	if first.PublicToken == "" {
		t.Fatal("public token not assigned")
	}

	second, err := service.RegisterParticipant(context.Background(), "Annie Easley", "Annie", "Easley", event.ID)
	if err != nil {
		t.Fatalf("register participant: %v", err)
	}
	if second.PublicToken == first.PublicToken {
		t.Fatal("public tokens must be unique across participants")
	}

	// Registration round-trip: the token resolves back to the participant.
	found, err := participants.FindByToken(context.Background(), first.PublicToken)
	if err != nil {
		t.Fatalf("find by token: %v", err)
	}
	if found.ID != first.ID {
		t.Fatalf("find by token returned id %d, want %d", found.ID, first.ID)
	}
}

func TestRegisterParticipantUnknownEvent(t *testing.T) {
	t.Parallel()

	service := NewParticipantService(newFakeParticipantRepo(), newFakeEventRepo())
	_, err := service.RegisterParticipant(context.Background(), "Grace Hopper", "Grace", "Hopper", 99)
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("err = %v, want %v", err, domain.ErrEventNotFound)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	t.Parallel()

	events := newFakeEventRepo()
	participants := newFakeParticipantRepo()
	service := NewParticipantService(participants, events)

	event := &entities.Event{Name: "Hackathon 2026"}
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	registered, err := service.RegisterParticipant(context.Background(), "Grace Hopper", "Grace", "Hopper", event.ID)
	if err != nil {
		t.Fatalf("register participant: %v", err)
	}

	newFamily := "Murray Hopper"
	updated, err := service.UpdateProfile(context.Background(), registered.ID, input.ProfileUpdate{
		FamilyName: &newFamily,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FamilyName != newFamily {
		t.Fatalf("family name = %q, want %q", updated.FamilyName, newFamily)
	}
	if updated.GivenName != "Grace" {
		t.Fatalf("given name = %q, want unchanged %q", updated.GivenName, "Grace")
	}
	if updated.PublicToken != registered.PublicToken {
		t.Fatal("public token must never change")
	}
}

func TestUpdateProfileUnknownParticipant(t *testing.T) {
	t.Parallel()

	service := NewParticipantService(newFakeParticipantRepo(), newFakeEventRepo())
	name := "Anyone"
	_, err := service.UpdateProfile(context.Background(), 7, input.ProfileUpdate{DisplayName: &name})
	if !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Fatalf("err = %v, want %v", err, domain.ErrParticipantNotFound)
	}
}
