package chathub

import (
	"encoding/json"
	"log"
	"time"

	"mentorgo/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocketClient implements the Client interface over a gorilla/websocket
// connection.
type WebSocketClient struct {
	SessionID string
	UserID    uint
	UserType  string
	RoomID    string
	Conn      *websocket.Conn
	Hub       *ManagerService
	Send      chan models.Event
}

func (c *WebSocketClient) GetSessionID() string                { return c.SessionID }
func (c *WebSocketClient) GetUserID() uint                     { return c.UserID }
func (c *WebSocketClient) GetUserType() string                 { return c.UserType }
func (c *WebSocketClient) GetRoomID() string                   { return c.RoomID }
func (c *WebSocketClient) SetRoomID(id string)                 { c.RoomID = id }
func (c *WebSocketClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump. Called only by
// the hub during unregister, so no event can be queued afterwards.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

// readPump reads client events and forwards them to the hub. It owns the
// connection teardown: when the read side fails, the session is
// unregistered before the socket closes, so no later broadcast references
// it.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var event models.Event
		if err := json.Unmarshal(data, &event); err != nil {
			log.Printf("Error decoding JSON from session %s: %v", c.SessionID, err)
			continue
		}

		// Identity comes from the authenticated connection, never the wire.
		event.SessionID = c.SessionID
		event.SenderID = c.UserID

		c.Hub.IncomingCh <- event
	}
}

// writePump drains the Send channel into the socket and keeps the
// connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("Error encoding JSON for session %s: %v", c.SessionID, err)
				continue
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
