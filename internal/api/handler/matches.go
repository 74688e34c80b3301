package handler

import (
	"net/http"
	"strconv"

	"mentorgo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ListMentors returns the mentor directory for students browsing manually.
func (h *Handler) ListMentors(c *gin.Context) {
	mentors, err := h.Storage.GetMentors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// SuggestMentors returns unmatched mentors ranked by compatibility score.
func (h *Handler) SuggestMentors(c *gin.Context) {
	suggestions, err := h.Matching.Suggest(h.callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// RequestMatch creates a pending match from the calling student to a mentor.
func (h *Handler) RequestMatch(c *gin.Context) {
	var body struct {
		MentorID uint `json:"mentorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return
	}

	match, err := h.Matching.RequestMatch(h.callerID(c), body.MentorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// RespondMatch lets the mentor accept or reject a pending match.
func (h *Handler) RespondMatch(c *gin.Context) {
	matchID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}

	var body struct {
		Status models.MatchStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	match, err := h.Matching.Respond(matchID, h.callerID(c), body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// ListMatches returns every match of the caller, most recent first.
func (h *Handler) ListMatches(c *gin.Context) {
	matches, err := h.Matching.ListForUser(h.callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
