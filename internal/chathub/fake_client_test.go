package chathub

import "mentorgo/backend/internal/models"

// fakeClient is an in-memory Client for hub tests. Events the hub pushes are
// captured on a buffered channel the test drains synchronously.
type fakeClient struct {
	sessionID string
	userID    uint
	userType  string
	roomID    string
	send      chan models.Event
	closed    bool
	started   bool
}

func newFakeClient(sessionID string, userID uint, userType string) *fakeClient {
	return &fakeClient{
		sessionID: sessionID,
		userID:    userID,
		userType:  userType,
		send:      make(chan models.Event, 8),
	}
}

func (f *fakeClient) GetSessionID() string { return f.sessionID }

func (f *fakeClient) GetUserID() uint { return f.userID }

func (f *fakeClient) GetUserType() string { return f.userType }

func (f *fakeClient) GetRoomID() string { return f.roomID }

func (f *fakeClient) SetRoomID(roomID string) { f.roomID = roomID }

func (f *fakeClient) GetSendChannel() chan<- models.Event { return f.send }

func (f *fakeClient) Run() { f.started = true }

func (f *fakeClient) Close() { f.closed = true }

// nextEvent pops the oldest delivered event, or a zero Event when none was
// delivered. Handlers run synchronously in these tests, so no waiting is
// involved.
func (f *fakeClient) nextEvent() models.Event {
	select {
	case event := <-f.send:
		return event
	default:
		return models.Event{}
	}
}

func (f *fakeClient) pendingEvents() int { return len(f.send) }
