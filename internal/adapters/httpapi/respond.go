package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qrlogger/internal/domain"
	"qrlogger/internal/domain/entities"
)

type eventResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type participantResponse struct {
	ID          uint   `json:"id"`
	PublicToken string `json:"public_token"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	EventID     uint   `json:"event_id"`
}

type activityResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	EventID       uint   `json:"event_id"`
	Status        string `json:"status"`
	Prerequisites []uint `json:"prerequisites,omitempty"`
}

type checkinResponse struct {
	ID            uint      `json:"id"`
	ParticipantID uint      `json:"participant_id"`
	ActivityID    uint      `json:"activity_id"`
	CheckedInAt   time.Time `json:"checked_in_at"`
}

func toEventResponse(e *entities.Event) eventResponse {
	return eventResponse{ID: e.ID, Name: e.Name}
}

func toParticipantResponse(p *entities.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID,
		PublicToken: p.PublicToken,
		DisplayName: p.DisplayName,
		GivenName:   p.GivenName,
		FamilyName:  p.FamilyName,
		EventID:     p.EventID,
	}
}

func toActivityResponse(a *entities.Activity) activityResponse {
	return activityResponse{
		ID:            a.ID,
		Name:          a.Name,
		EventID:       a.EventID,
		Status:        a.Status,
		Prerequisites: a.Prerequisites,
	}
}

func toCheckinResponse(c *entities.Checkin) checkinResponse {
	return checkinResponse{
		ID:            c.ID,
		ParticipantID: c.ParticipantID,
		ActivityID:    c.ActivityID,
		CheckedInAt:   c.CheckedInAt,
	}
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrCheckinNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrReferenceNotFound),
		errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStatusRegression),
		errors.Is(err, domain.ErrPrerequisiteCycle):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
