package storage

import (
	"context"
	"errors"
	"fmt"

	"mentorgo/backend/internal/apperr"
	"mentorgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence boundary of the match engine. One interface
// keeps test doubles simple: every consumer mocks the same surface.
type Storage interface {
	// Users (read-only to the core)
	GetUserByID(id uint) (*models.User, error)
	GetMentors() ([]models.User, error)
	GetAvailableMentors(studentID uint) ([]models.User, error)

	// Matches
	CreateMatch(match *models.Match) error
	GetMatchByID(id uint) (*models.Match, error)
	GetMatchesForUser(userID uint) ([]models.Match, error)
	HasActiveMatch(studentID, mentorID uint) (bool, error)
	UpdateMatchStatus(matchID uint, from, to models.MatchStatus) error

	// Messages
	SaveMessage(msg *models.Message) error
	GetMessagesForMatch(matchID uint) ([]models.Message, error)
	MarkMessagesRead(matchID, readerID uint) error

	// Call requests
	CreateCallRequest(req *models.CallRequest) error
	GetCallRequestByID(id uint) (*models.CallRequest, error)
	GetLatestCallRequest(matchID uint) (*models.CallRequest, error)
	GetPendingCallRequestsForMentor(mentorID uint) ([]models.CallRequest, error)
	UpdateCallRequestStatus(requestID uint, from, to models.CallStatus) error

	// Realtime fabric
	PublishEvent(roomID string, event models.Event) error
	SubscribeToRooms() *redis.PubSub
	AddSessionToRoom(roomID, sessionID string) error
	RemoveSessionFromRoom(roomID, sessionID string) error
	GetRoomSessions(roomID string) ([]string, error)
}

// Service implements Storage on top of PostgreSQL (via GORM) and Redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// dbError normalizes GORM errors into the apperr taxonomy. Requires the
// gorm.Config{TranslateError: true} option so unique-index violations
// arrive as gorm.ErrDuplicatedKey.
func dbError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrConflict
	default:
		return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
}

// redisError wraps Redis driver failures (including timeouts) as upstream
// errors.
func redisError(err error) error {
	if err == nil || errors.Is(err, redis.Nil) {
		return nil
	}
	return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
}
