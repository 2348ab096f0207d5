// Package httpapi is the scanning-station HTTP surface. Each station posts
// decoded tokens here and renders the outcome text to the operator.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"qrlogger/internal/ports/input"
	"qrlogger/internal/ports/output"
)

type Handler struct {
	checkins     input.CheckinUseCase
	participants input.ParticipantUseCase
	activities   input.ActivityUseCase
	events       input.EventUseCase
	translator   output.T
}

func NewHandler(
	checkins input.CheckinUseCase,
	participants input.ParticipantUseCase,
	activities input.ActivityUseCase,
	events input.EventUseCase,
	translator output.T,
) *Handler {
	return &Handler{
		checkins:     checkins,
		participants: participants,
		activities:   activities,
		events:       events,
		translator:   translator,
	}
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/scan", h.SubmitScan)

		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id/activities", h.ListEventActivities)
		api.GET("/events/:id/participants", h.GetEventRoster)

		api.POST("/activities", h.CreateActivity)
		api.GET("/activities/:id", h.GetActivity)
		api.PATCH("/activities/:id/status", h.SetActivityStatus)
		api.PUT("/activities/:id/prerequisites", h.SetActivityPrerequisites)
		api.GET("/activities/:id/checkins", h.ListActivityCheckins)

		api.POST("/participants", h.RegisterParticipant)
		api.GET("/participants", h.SearchParticipants)
		api.GET("/participants/:id", h.GetParticipant)
		api.PATCH("/participants/:id", h.UpdateParticipant)
		api.GET("/participants/:id/checkins", h.ListParticipantCheckins)
	}

	return r
}

// locale picks the operator's locale: explicit query parameter first, then
// the first Accept-Language tag.
func locale(c *gin.Context) string {
	if l := c.Query("locale"); l != "" {
		return l
	}
	lang := c.GetHeader("Accept-Language")
	for i := 0; i < len(lang); i++ {
		if lang[i] == ',' || lang[i] == ';' {
			return lang[:i]
		}
	}
	return lang
}
