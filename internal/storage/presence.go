package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"mentorgo/backend/internal/config"
	"mentorgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Redis key layout for the realtime fabric. Presence sets only mirror live
// subscriptions; a restarted instance rebuilds them as clients reconnect.
func roomChannel(roomID string) string { return "room:" + roomID }
func roomSessionsKey(roomID string) string {
	return fmt.Sprintf("room:%s:sessions", roomID)
}

// PublishEvent fans an event out over the room's Pub/Sub channel so every
// instance holding a subscribed session delivers it.
func (s *Service) PublishEvent(roomID string, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(s.Ctx, config.RedisOpTimeout)
	defer cancel()

	return redisError(s.Redis.Publish(ctx, roomChannel(roomID), payload).Err())
}

// SubscribeToRooms subscribes to every room channel with a pattern
// subscription. The caller owns the returned PubSub.
func (s *Service) SubscribeToRooms() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, roomChannel("*"))
}

// AddSessionToRoom records a live subscription in the room's presence set.
func (s *Service) AddSessionToRoom(roomID, sessionID string) error {
	ctx, cancel := context.WithTimeout(s.Ctx, config.RedisOpTimeout)
	defer cancel()

	return redisError(s.Redis.SAdd(ctx, roomSessionsKey(roomID), sessionID).Err())
}

// RemoveSessionFromRoom drops a session from the room's presence set.
func (s *Service) RemoveSessionFromRoom(roomID, sessionID string) error {
	ctx, cancel := context.WithTimeout(s.Ctx, config.RedisOpTimeout)
	defer cancel()

	return redisError(s.Redis.SRem(ctx, roomSessionsKey(roomID), sessionID).Err())
}

// GetRoomSessions returns the session handles currently subscribed to the
// room across all instances.
func (s *Service) GetRoomSessions(roomID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(s.Ctx, config.RedisOpTimeout)
	defer cancel()

	sessions, err := s.Redis.SMembers(ctx, roomSessionsKey(roomID)).Result()
	if err != nil {
		return nil, redisError(err)
	}
	return sessions, nil
}
