package chathub

import (
	"encoding/json"
	"log"

	"mentorgo/backend/internal/models"
)

// RunPubSub consumes the Redis room channels and feeds decoded events into
// the hub's PubSubCh, where the Run loop fans them out to local sessions.
// Delivery through Redis means every instance, the publisher included, sees
// the same persisted message exactly once per subscription.
func (m *ManagerService) RunPubSub() {
	pubsub := m.Storage.SubscribeToRooms()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event models.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("ERROR: failed to decode pubsub payload: %v", err)
			continue
		}
		m.PubSubCh <- event
	}
}
