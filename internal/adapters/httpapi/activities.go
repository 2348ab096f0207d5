package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createActivityRequest struct {
	Name            string `json:"name" binding:"required"`
	EventID         uint   `json:"event_id" binding:"required"`
	Status          string `json:"status"`
	PrerequisiteIDs []uint `json:"prerequisite_ids"`
}

func (h *Handler) CreateActivity(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.activities.CreateActivity(
		c.Request.Context(), req.Name, req.EventID, req.Status, req.PrerequisiteIDs,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toActivityResponse(activity))
}

func (h *Handler) GetActivity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	activity, err := h.activities.GetActivityByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toActivityResponse(activity))
}

func (h *Handler) ListEventActivities(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	activities, err := h.activities.ListEventActivities(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]activityResponse, len(activities))
	for i := range activities {
		out[i] = toActivityResponse(&activities[i])
	}
	c.JSON(http.StatusOK, out)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) SetActivityStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.activities.SetActivityStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toActivityResponse(activity))
}

type setPrerequisitesRequest struct {
	PrerequisiteIDs []uint `json:"prerequisite_ids"`
}

func (h *Handler) SetActivityPrerequisites(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req setPrerequisitesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.activities.SetActivityPrerequisites(c.Request.Context(), id, req.PrerequisiteIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toActivityResponse(activity))
}

// ListActivityCheckins reports attendance for one activity, oldest first,
// with a running total for the station display.
func (h *Handler) ListActivityCheckins(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	checkins, err := h.checkins.ActivityAttendance(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]checkinResponse, len(checkins))
	for i := range checkins {
		out[i] = toCheckinResponse(&checkins[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(out),
		"checkins": out,
	})
}
