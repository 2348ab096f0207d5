package entities

import (
	"time"

	"qrlogger/internal/domain"
)

func (a *Activity) IsOpenForCheckin() bool {
	return a.Status == domain.StatusActive
}

type Activity struct {
	ID            uint
	Name          string
	EventID       uint
	Status        string
	Prerequisites []uint // activity IDs that must be completed first
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
