package models

import "time"

// Message is a chat message inside a match's room. Rows are immutable after
// creation except for IsRead, which flips when the counterpart opens the
// conversation.
type Message struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	MatchID    uint   `gorm:"not null;index:idx_match_created,priority:1" json:"matchId"`
	SenderID   uint   `gorm:"not null" json:"senderId"`
	ReceiverID uint   `gorm:"not null" json:"receiverId"`
	Content    string `gorm:"type:text;not null" json:"content"`
	IsRead     bool   `gorm:"not null;default:false" json:"isRead"`

	CreatedAt time.Time `gorm:"index:idx_match_created,priority:2" json:"createdAt"`
}
