package storage

import (
	"mentorgo/backend/internal/models"
)

// SaveMessage persists a chat message. msg.ID and msg.CreatedAt are filled by
// GORM on insert; the hub broadcasts only after this returns nil.
func (s *Service) SaveMessage(msg *models.Message) error {
	return dbError(s.DB.Create(msg).Error)
}

// GetMessagesForMatch returns the full conversation, oldest first.
func (s *Service) GetMessagesForMatch(matchID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.Where("match_id = ?", matchID).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, dbError(err)
	}
	return messages, nil
}

// MarkMessagesRead flags every message in the match that the reader did not
// author. The reader's own messages are left untouched.
func (s *Service) MarkMessagesRead(matchID, readerID uint) error {
	err := s.DB.Model(&models.Message{}).
		Where("match_id = ? AND sender_id <> ? AND is_read = ?", matchID, readerID, false).
		Update("is_read", true).Error
	return dbError(err)
}
