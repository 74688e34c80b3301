package handler

import (
	"net/http"

	"mentorgo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RequestCall creates a pending call request on an accepted match.
func (h *Handler) RequestCall(c *gin.Context) {
	var body struct {
		MatchID uint `json:"matchId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "matchId is required"})
		return
	}

	req, err := h.Calls.Request(body.MatchID, h.callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// RespondCall lets the mentor approve or reject a pending call request.
func (h *Handler) RespondCall(c *gin.Context) {
	var body struct {
		RequestID uint              `json:"requestId" binding:"required"`
		Status    models.CallStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requestId and status are required"})
		return
	}

	req, err := h.Calls.Respond(body.RequestID, h.callerID(c), body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetCallStatus returns the current call status for a match, derived from
// the latest request row ("none" when there is none).
func (h *Handler) GetCallStatus(c *gin.Context) {
	matchID, err := parseIDParam(c, "matchId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}

	status, err := h.Calls.Status(matchID, h.callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// ListPendingCallRequests returns the mentor's pending call requests across
// all matches, driving the approval affordance.
func (h *Handler) ListPendingCallRequests(c *gin.Context) {
	reqs, err := h.Calls.PendingForMentor(h.callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}
