package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrCheckinNotFound     = errors.New("check-in not found")
	ErrReferenceNotFound   = errors.New("referenced entity not found")
	ErrAlreadyCheckedIn    = errors.New("participant already checked in")
	ErrActivityNotOpen     = errors.New("activity is not open for check-in")
	ErrEventMismatch       = errors.New("participant is registered under a different event")
	ErrInvalidStatus       = errors.New("unknown activity status")
	ErrStatusRegression    = errors.New("activity status can only move forward")
	ErrPrerequisiteCycle   = errors.New("prerequisite assignment would create a cycle")
)
