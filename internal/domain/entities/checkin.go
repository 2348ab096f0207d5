package entities

import "time"

// Checkin records that a participant attended an activity. At most one exists
// per (ParticipantID, ActivityID) pair; rows are never updated or deleted.
type Checkin struct {
	ID            uint
	ParticipantID uint
	ActivityID    uint
	CheckedInAt   time.Time
	CreatedAt     time.Time
}
