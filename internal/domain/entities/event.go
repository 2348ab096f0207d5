package entities

import "time"

// Event groups participants and activities under one registration scope.
type Event struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
