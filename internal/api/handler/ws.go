package handler

import (
	"net/http"

	"mentorgo/backend/internal/chathub"
	"mentorgo/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and registers a fresh session with
// the hub. Each connection gets its own session handle; the user identity
// comes from the verified token.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	ident, err := h.verifyToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		SessionID: uuid.New().String(),
		UserID:    ident.UserID,
		UserType:  ident.UserType,
		Conn:      conn,
		Hub:       h.Hub,
		Send:      make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
