package chathub

import (
	"log"
	"strconv"
	"strings"

	"mentorgo/backend/internal/models"
	"mentorgo/backend/internal/storage"
)

// ManagerService is the hub: it owns the session registry and room
// membership, and serializes every mutation of them through one goroutine.
// Messages reach subscribers only after they are persisted, and delivery is
// best-effort per session.
type ManagerService struct {
	// Clients maps session handle -> live client. Owned by Run.
	Clients map[string]Client

	// Channels
	IncomingCh   chan models.Event
	RegisterCh   chan Client
	UnregisterCh chan Client
	// PubSubCh receives events fanned out over Redis, including the ones
	// this instance published itself.
	PubSubCh chan models.Event

	Storage storage.Storage
}

// NewManagerService creates a hub bound to the given storage.
func NewManagerService(s storage.Storage) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		IncomingCh:   make(chan models.Event),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		PubSubCh:     make(chan models.Event, 64),
		Storage:      s,
	}
}

// Run is the hub's main dispatch loop. It must be started exactly once.
func (m *ManagerService) Run() {
	log.Println("Chat hub started.")

	for {
		select {
		case client := <-m.RegisterCh:
			m.handleRegister(client)

		case client := <-m.UnregisterCh:
			m.handleUnregister(client)

		case event := <-m.IncomingCh:
			m.handleIncoming(event)

		case event := <-m.PubSubCh:
			// Fan-out from Redis: deliver to every local session in the
			// room, the sender's own session included.
			m.broadcast(event.RoomID, event)
		}
	}
}

func (m *ManagerService) handleRegister(c Client) {
	if _, ok := m.Clients[c.GetSessionID()]; ok {
		return
	}
	m.Clients[c.GetSessionID()] = c
	log.Printf("INFO: session %s registered for user %d", c.GetSessionID(), c.GetUserID())
}

func (m *ManagerService) handleUnregister(c Client) {
	if _, ok := m.Clients[c.GetSessionID()]; !ok {
		return
	}
	if roomID := c.GetRoomID(); roomID != "" {
		if err := m.Storage.RemoveSessionFromRoom(roomID, c.GetSessionID()); err != nil {
			log.Printf("WARNING: failed to clear presence for session %s: %v", c.GetSessionID(), err)
		}
	}
	delete(m.Clients, c.GetSessionID())
	c.Close()
	log.Printf("INFO: session %s unregistered", c.GetSessionID())
}

func (m *ManagerService) handleIncoming(event models.Event) {
	client, ok := m.Clients[event.SessionID]
	if !ok {
		// Session disconnected between read and dispatch; nothing to do.
		return
	}

	switch event.Type {
	case models.EventJoinRoom:
		m.handleJoin(client, event)
	case models.EventSendMessage:
		m.handleSend(client, event)
	default:
		m.deliverTo(client, models.Event{Type: models.EventError, Error: "unknown event type"})
	}
}

// handleJoin subscribes the session to a match's room after verifying the
// user is a participant of an accepted match. Re-joining the same room is
// idempotent; joining another room leaves the previous one first.
func (m *ManagerService) handleJoin(c Client, event models.Event) {
	matchID, err := parseRoomID(event.RoomID)
	if err != nil {
		m.deliverTo(c, models.Event{Type: models.EventError, Error: "invalid room id"})
		return
	}

	match, err := m.Storage.GetMatchByID(matchID)
	if err != nil {
		m.deliverTo(c, models.Event{Type: models.EventError, RoomID: event.RoomID, Error: "match not found"})
		return
	}
	if !match.HasParticipant(c.GetUserID()) {
		m.deliverTo(c, models.Event{Type: models.EventError, RoomID: event.RoomID, Error: "not a participant of this match"})
		return
	}
	if match.Status != models.MatchAccepted {
		m.deliverTo(c, models.Event{Type: models.EventError, RoomID: event.RoomID, Error: "match is not accepted"})
		return
	}

	if prev := c.GetRoomID(); prev != "" && prev != event.RoomID {
		if err := m.Storage.RemoveSessionFromRoom(prev, c.GetSessionID()); err != nil {
			log.Printf("WARNING: failed to leave room %s for session %s: %v", prev, c.GetSessionID(), err)
		}
	}

	c.SetRoomID(event.RoomID)
	if err := m.Storage.AddSessionToRoom(event.RoomID, c.GetSessionID()); err != nil {
		log.Printf("WARNING: failed to record presence for session %s: %v", c.GetSessionID(), err)
	}

	m.deliverTo(c, models.Event{Type: models.EventRoomJoined, RoomID: event.RoomID})
}

// handleSend validates, persists, then publishes a chat message. The
// broadcast carries the persisted row (ID and timestamp included) so the
// sender's echo reflects authoritative state, not a local guess.
func (m *ManagerService) handleSend(c Client, event models.Event) {
	content := strings.TrimSpace(event.Content)
	if content == "" {
		return
	}

	matchID, err := parseRoomID(event.RoomID)
	if err != nil {
		m.deliverTo(c, models.Event{Type: models.EventError, Error: "invalid room id"})
		return
	}

	match, err := m.Storage.GetMatchByID(matchID)
	if err != nil {
		m.deliverTo(c, models.Event{Type: models.EventError, RoomID: event.RoomID, Error: "match not found"})
		return
	}
	if !match.HasParticipant(c.GetUserID()) {
		m.deliverTo(c, models.Event{Type: models.EventError, RoomID: event.RoomID, Error: "not a participant of this match"})
		return
	}
	if match.Status != models.MatchAccepted {
		m.deliverTo(c, models.Event{Type: models.EventError, RoomID: event.RoomID, Error: "match is not accepted"})
		return
	}

	receiverID := event.ReceiverID
	if receiverID == 0 {
		receiverID = match.CounterpartOf(c.GetUserID())
	}

	msg := &models.Message{
		MatchID:    matchID,
		SenderID:   c.GetUserID(),
		ReceiverID: receiverID,
		Content:    content,
	}

	// Persistence must succeed before anything becomes visible.
	if err := m.Storage.SaveMessage(msg); err != nil {
		log.Printf("ERROR: failed to save message for match %d: %v", matchID, err)
		m.deliverTo(c, models.Event{Type: models.EventError, RoomID: event.RoomID, Error: "failed to save message"})
		return
	}

	out := models.Event{Type: models.EventReceiveMessage, RoomID: event.RoomID, Message: msg}
	if err := m.Storage.PublishEvent(event.RoomID, out); err != nil {
		// The row is durable; fall back to local delivery so sessions on
		// this instance still see it.
		log.Printf("WARNING: publish failed for room %s, delivering locally: %v", event.RoomID, err)
		m.broadcast(event.RoomID, out)
	}
}

// broadcast pushes an event to every local session subscribed to the room.
// A session with a full send buffer is skipped; durability comes from the
// database, not from delivery.
func (m *ManagerService) broadcast(roomID string, event models.Event) {
	for _, client := range m.Clients {
		if client.GetRoomID() != roomID {
			continue
		}
		select {
		case client.GetSendChannel() <- event:
		default:
			log.Printf("WARNING: dropping event for slow session %s", client.GetSessionID())
		}
	}
}

// deliverTo sends an event to a single session, best-effort.
func (m *ManagerService) deliverTo(c Client, event models.Event) {
	select {
	case c.GetSendChannel() <- event:
	default:
		log.Printf("WARNING: dropping event for slow session %s", c.GetSessionID())
	}
}

// Room IDs on the wire are match IDs rendered as strings.
func parseRoomID(roomID string) (uint, error) {
	id, err := strconv.ParseUint(roomID, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
