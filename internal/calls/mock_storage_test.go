package calls_test

import (
	"mentorgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify/mock implementation of the storage.Storage
// interface.
type MockStorage struct {
	mock.Mock
}

// User operations
func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetMentors() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) GetAvailableMentors(studentID uint) ([]models.User, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// Match operations
func (m *MockStorage) CreateMatch(match *models.Match) error {
	args := m.Called(match)
	return args.Error(0)
}

func (m *MockStorage) GetMatchByID(id uint) (*models.Match, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockStorage) GetMatchesForUser(userID uint) ([]models.Match, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Match), args.Error(1)
}

func (m *MockStorage) HasActiveMatch(studentID, mentorID uint) (bool, error) {
	args := m.Called(studentID, mentorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) UpdateMatchStatus(matchID uint, from, to models.MatchStatus) error {
	args := m.Called(matchID, from, to)
	return args.Error(0)
}

// Message operations
func (m *MockStorage) SaveMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) GetMessagesForMatch(matchID uint) ([]models.Message, error) {
	args := m.Called(matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStorage) MarkMessagesRead(matchID, readerID uint) error {
	args := m.Called(matchID, readerID)
	return args.Error(0)
}

// Call request operations
func (m *MockStorage) CreateCallRequest(req *models.CallRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockStorage) GetCallRequestByID(id uint) (*models.CallRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CallRequest), args.Error(1)
}

func (m *MockStorage) GetLatestCallRequest(matchID uint) (*models.CallRequest, error) {
	args := m.Called(matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CallRequest), args.Error(1)
}

func (m *MockStorage) GetPendingCallRequestsForMentor(mentorID uint) ([]models.CallRequest, error) {
	args := m.Called(mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CallRequest), args.Error(1)
}

func (m *MockStorage) UpdateCallRequestStatus(requestID uint, from, to models.CallStatus) error {
	args := m.Called(requestID, from, to)
	return args.Error(0)
}

// Realtime operations
func (m *MockStorage) PublishEvent(roomID string, event models.Event) error {
	args := m.Called(roomID, event)
	return args.Error(0)
}

func (m *MockStorage) SubscribeToRooms() *redis.PubSub {
	args := m.Called()
	return args.Get(0).(*redis.PubSub)
}

func (m *MockStorage) AddSessionToRoom(roomID, sessionID string) error {
	args := m.Called(roomID, sessionID)
	return args.Error(0)
}

func (m *MockStorage) RemoveSessionFromRoom(roomID, sessionID string) error {
	args := m.Called(roomID, sessionID)
	return args.Error(0)
}

func (m *MockStorage) GetRoomSessions(roomID string) ([]string, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
