package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createEventRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.events.CreateEvent(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(event))
}

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	c.JSON(http.StatusOK, out)
}
