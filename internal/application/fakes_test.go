package application

import (
	"context"
	"strings"
	"sync"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID uint
	events map[uint]entities.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uint]entities.Event{}}
}

func (f *fakeEventRepo) Create(_ context.Context, event *entities.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	event.ID = f.nextID
	f.events[event.ID] = *event
	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uint) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &event, nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Event, 0, len(f.events))
	for _, event := range f.events {
		out = append(out, event)
	}
	return out, nil
}

type fakeParticipantRepo struct {
	mu           sync.Mutex
	nextID       uint
	participants map[uint]entities.Participant
	findErr      error
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: map[uint]entities.Participant{}}
}

func (f *fakeParticipantRepo) Create(_ context.Context, participant *entities.Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	participant.ID = f.nextID
	f.participants[participant.ID] = *participant
	return nil
}

func (f *fakeParticipantRepo) FindByID(_ context.Context, id uint) (*entities.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	participant, ok := f.participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return &participant, nil
}

func (f *fakeParticipantRepo) FindByToken(_ context.Context, token string) (*entities.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, participant := range f.participants {
		if participant.PublicToken == token {
			p := participant
			return &p, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (f *fakeParticipantRepo) SearchByFamilyName(_ context.Context, substring string) ([]entities.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Participant
	for _, participant := range f.participants {
		if strings.Contains(strings.ToLower(participant.FamilyName), strings.ToLower(substring)) {
			out = append(out, participant)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) ListByEvent(_ context.Context, eventID uint) ([]entities.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Participant
	for _, participant := range f.participants {
		if participant.EventID == eventID {
			out = append(out, participant)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) UpdateProfile(_ context.Context, participant *entities.Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.participants[participant.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	f.participants[participant.ID] = *participant
	return nil
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	nextID     uint
	activities map[uint]entities.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: map[uint]entities.Activity{}}
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *entities.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	activity.ID = f.nextID
	f.activities[activity.ID] = *activity
	return nil
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uint) (*entities.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	activity, ok := f.activities[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &activity, nil
}

func (f *fakeActivityRepo) ListByEvent(_ context.Context, eventID uint) ([]entities.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Activity
	for _, activity := range f.activities {
		if activity.EventID == eventID {
			out = append(out, activity)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	activity, ok := f.activities[id]
	if !ok {
		return domain.ErrActivityNotFound
	}
	activity.Status = status
	f.activities[id] = activity
	return nil
}

func (f *fakeActivityRepo) SetPrerequisites(_ context.Context, id uint, prerequisiteIDs []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	activity, ok := f.activities[id]
	if !ok {
		return domain.ErrActivityNotFound
	}
	activity.Prerequisites = prerequisiteIDs
	f.activities[id] = activity
	return nil
}

// fakeCheckinRepo mirrors the stores' atomic check-then-insert contract.
type fakeCheckinRepo struct {
	mu        sync.Mutex
	nextID    uint
	records   []entities.Checkin
	inserts   int
	recordErr error
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{}
}

func (f *fakeCheckinRepo) Record(_ context.Context, checkin *entities.Checkin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	for _, existing := range f.records {
		if existing.ParticipantID == checkin.ParticipantID && existing.ActivityID == checkin.ActivityID {
			*checkin = existing
			return domain.ErrAlreadyCheckedIn
		}
	}
	f.nextID++
	checkin.ID = f.nextID
	checkin.CreatedAt = checkin.CheckedInAt
	f.records = append(f.records, *checkin)
	f.inserts++
	return nil
}

func (f *fakeCheckinRepo) ListByActivity(_ context.Context, activityID uint) ([]entities.Checkin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Checkin
	for _, record := range f.records {
		if record.ActivityID == activityID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) ListByParticipant(_ context.Context, participantID uint) ([]entities.Checkin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Checkin
	for _, record := range f.records {
		if record.ParticipantID == participantID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) CountByActivity(_ context.Context, activityID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, record := range f.records {
		if record.ActivityID == activityID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCheckinRepo) insertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inserts
}

type fakeDecoder struct {
	token string
	found bool
	err   error
}

func (f *fakeDecoder) Decode(_ context.Context, _ []byte) (string, bool, error) {
	return f.token, f.found, f.err
}

func seedParticipant(repo *fakeParticipantRepo, token string, eventID uint) *entities.Participant {
	participant := &entities.Participant{
		PublicToken: token,
		DisplayName: "Ada Lovelace",
		GivenName:   "Ada",
		FamilyName:  "Lovelace",
		EventID:     eventID,
	}
	_ = repo.Create(context.Background(), participant)
	return participant
}

func seedActivity(repo *fakeActivityRepo, eventID uint, status string) *entities.Activity {
	activity := &entities.Activity{
		Name:    "Opening Session",
		EventID: eventID,
		Status:  status,
	}
	_ = repo.Create(context.Background(), activity)
	return activity
}
