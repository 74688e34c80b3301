package handler

import (
	"errors"
	"net/http"

	"mentorgo/backend/internal/apperr"
	"mentorgo/backend/internal/calls"
	"mentorgo/backend/internal/chathub"
	"mentorgo/backend/internal/matching"
	"mentorgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP layer to the hub and the domain services.
type Handler struct {
	Hub       *chathub.ManagerService
	Storage   storage.Storage
	Matching  *matching.Service
	Calls     *calls.Service
	JWTSecret []byte
}

func NewHandler(hub *chathub.ManagerService, s storage.Storage, m *matching.Service, c *calls.Service, jwtSecret string) *Handler {
	return &Handler{
		Hub:       hub,
		Storage:   s,
		Matching:  m,
		Calls:     c,
		JWTSecret: []byte(jwtSecret),
	}
}

// RegisterRoutes mounts every endpoint on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(h.AuthRequired())
	{
		api.GET("/mentors", h.RequireRole("student"), h.ListMentors)

		api.GET("/matches", h.ListMatches)
		api.POST("/matches", h.RequireRole("student"), h.RequestMatch)
		api.POST("/matches/suggest", h.RequireRole("student"), h.SuggestMentors)
		api.PUT("/matches/:id/status", h.RequireRole("mentor"), h.RespondMatch)

		api.GET("/messages/match/:matchId", h.GetMessages)
		api.PUT("/messages/read/:matchId", h.MarkMessagesRead)

		api.POST("/calls/request", h.RequireRole("student"), h.RequestCall)
		api.POST("/calls/respond", h.RequireRole("mentor"), h.RespondCall)
		api.GET("/calls/status/:matchId", h.GetCallStatus)
		api.GET("/calls/requests", h.RequireRole("mentor"), h.ListPendingCallRequests)
	}

	r.GET("/ws", h.ServeWebSocket)
}

// respondError maps the apperr taxonomy onto HTTP status codes. Conflicts
// are reported as 400 with the service's message so clients can pattern-match
// the idempotent-pending case.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrInvalidState), errors.Is(err, apperr.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrUpstream):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
