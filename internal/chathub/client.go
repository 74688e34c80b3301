package chathub

import "mentorgo/backend/internal/models"

// Client is the interface for one live session (a single connected client
// channel). A user may hold several sessions at once; each session is
// subscribed to at most one room, and switching rooms implicitly leaves the
// previous one.
type Client interface {
	// GetSessionID returns the unique handle of this connection, distinct
	// from the user identity.
	GetSessionID() string
	// GetUserID returns the authenticated user behind the session.
	GetUserID() uint
	// GetUserType returns the verified role ("student" or "mentor").
	GetUserType() string

	// GetRoomID returns the room the session is currently subscribed to,
	// or "" when it has not joined one.
	GetRoomID() string
	// SetRoomID moves the session into a room. Called only from the hub
	// goroutine so room membership never races.
	SetRoomID(string)

	// GetSendChannel returns the channel the hub pushes outbound events
	// into. It is a send-only channel.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's connection and send channel.
	Close()
}
