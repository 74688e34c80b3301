package models

// Realtime event types exchanged over the websocket.
const (
	EventJoinRoom       = "join-room"
	EventSendMessage    = "send-message"
	EventReceiveMessage = "receive-message"
	EventRoomJoined     = "room-joined"
	EventError          = "error"
)

// Event is the single envelope for all realtime traffic. Client-to-server
// events carry RoomID/ReceiverID/Content; server-to-client events carry the
// persisted Message or an Error string. SessionID and SenderID are stamped by
// the server from the authenticated connection and never trusted from the
// wire.
type Event struct {
	Type       string   `json:"type"`
	RoomID     string   `json:"roomId,omitempty"`
	ReceiverID uint     `json:"receiverId,omitempty"`
	Content    string   `json:"content,omitempty"`
	Message    *Message `json:"message,omitempty"`
	Error      string   `json:"error,omitempty"`

	SessionID string `json:"-"`
	SenderID  uint   `json:"-"`
}
