package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"qrlogger/internal/ports/input"
)

type registerParticipantRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	EventID     uint   `json:"event_id" binding:"required"`
}

func (h *Handler) RegisterParticipant(c *gin.Context) {
	var req registerParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	participant, err := h.participants.RegisterParticipant(
		c.Request.Context(), req.DisplayName, req.GivenName, req.FamilyName, req.EventID,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toParticipantResponse(participant))
}

func (h *Handler) GetParticipant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	participant, err := h.participants.GetParticipantByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toParticipantResponse(participant))
}

func (h *Handler) SearchParticipants(c *gin.Context) {
	participants, err := h.participants.SearchParticipantsByFamilyName(
		c.Request.Context(), c.Query("family_name"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]participantResponse, len(participants))
	for i := range participants {
		out[i] = toParticipantResponse(&participants[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetEventRoster(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	participants, err := h.participants.GetEventRoster(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]participantResponse, len(participants))
	for i := range participants {
		out[i] = toParticipantResponse(&participants[i])
	}
	c.JSON(http.StatusOK, out)
}

type updateParticipantRequest struct {
	DisplayName *string `json:"display_name"`
	GivenName   *string `json:"given_name"`
	FamilyName  *string `json:"family_name"`
}

func (h *Handler) UpdateParticipant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	participant, err := h.participants.UpdateProfile(c.Request.Context(), id, input.ProfileUpdate{
		DisplayName: req.DisplayName,
		GivenName:   req.GivenName,
		FamilyName:  req.FamilyName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toParticipantResponse(participant))
}

func (h *Handler) ListParticipantCheckins(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	checkins, err := h.checkins.ParticipantHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]checkinResponse, len(checkins))
	for i := range checkins {
		out[i] = toCheckinResponse(&checkins[i])
	}
	c.JSON(http.StatusOK, out)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
