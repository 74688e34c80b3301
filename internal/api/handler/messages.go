package handler

import (
	"fmt"
	"net/http"

	"mentorgo/backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// GetMessages returns the conversation of a match, oldest first. Restricted
// to the match's participants; clients re-fetch here after reconnecting
// instead of expecting replay over the socket.
func (h *Handler) GetMessages(c *gin.Context) {
	matchID, err := h.matchForParticipant(c, "matchId")
	if err != nil {
		respondError(c, err)
		return
	}

	messages, err := h.Storage.GetMessagesForMatch(matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkMessagesRead flags the counterpart's messages in a match as read.
func (h *Handler) MarkMessagesRead(c *gin.Context) {
	matchID, err := h.matchForParticipant(c, "matchId")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Storage.MarkMessagesRead(matchID, h.callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages marked as read"})
}

// matchForParticipant parses the match id parameter and verifies the caller
// participates in that match.
func (h *Handler) matchForParticipant(c *gin.Context, param string) (uint, error) {
	matchID, err := parseIDParam(c, param)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid match id", apperr.ErrNotFound)
	}

	match, err := h.Storage.GetMatchByID(matchID)
	if err != nil {
		return 0, err
	}
	if !match.HasParticipant(h.callerID(c)) {
		return 0, fmt.Errorf("%w: not a participant of this match", apperr.ErrForbidden)
	}
	return matchID, nil
}
