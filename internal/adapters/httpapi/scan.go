package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrlogger/internal/application"
	"qrlogger/internal/ports/input"
)

type scanRequest struct {
	ActivityID uint   `json:"activity_id" binding:"required"`
	Token      string `json:"token"`
}

type scanResponse struct {
	Outcome     input.ScanOutcome    `json:"outcome"`
	Reason      string               `json:"reason,omitempty"`
	Message     string               `json:"message"`
	Participant *participantResponse `json:"participant,omitempty"`
	Record      *checkinResponse     `json:"record,omitempty"`
}

// SubmitScan runs one scan attempt. A missing or empty token is the explicit
// "no symbol decoded" signal from the capture side.
func (h *Handler) SubmitScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.checkins.SubmitScan(c.Request.Context(), req.ActivityID, req.Token)
	if result == nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if result.Outcome == input.OutcomeStorageFailure {
		// the failure detail already rides in the result
		status = http.StatusInternalServerError
	}

	resp := scanResponse{
		Outcome: result.Outcome,
		Reason:  result.Reason,
		Message: h.outcomeMessage(locale(c), result),
	}
	if result.Participant != nil {
		p := toParticipantResponse(result.Participant)
		resp.Participant = &p
	}
	if result.Record != nil {
		r := toCheckinResponse(result.Record)
		resp.Record = &r
	}
	c.JSON(status, resp)
}

// outcomeMessage maps a terminal outcome to its operator-facing message key
// and renders it.
func (h *Handler) outcomeMessage(loc string, result *input.ScanResult) string {
	var data map[string]any
	if result.Participant != nil {
		data = map[string]any{"DisplayName": result.Participant.DisplayName}
	}
	switch result.Outcome {
	case input.OutcomeSuccess:
		return h.translator.T(loc, "scan.success", data)
	case input.OutcomeAlreadyCheckedIn:
		return h.translator.T(loc, "scan.already_checked_in", data)
	case input.OutcomeParticipantNotFound:
		if result.Reason == application.ReasonNoSymbol {
			return h.translator.T(loc, "scan.no_symbol", nil)
		}
		return h.translator.T(loc, "scan.unknown_token", nil)
	case input.OutcomeActivityNotEligible:
		return h.translator.T(loc, "scan.not_eligible", nil)
	default:
		return h.translator.T(loc, "scan.failure", nil)
	}
}
