package entities

import "time"

// Participant represents a person registered under an event. PublicToken is the
// opaque string printed into their QR badge; it is assigned once and never
// changes.
type Participant struct {
	ID          uint
	PublicToken string
	DisplayName string
	GivenName   string
	FamilyName  string
	EventID     uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
