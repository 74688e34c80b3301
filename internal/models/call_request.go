package models

import "time"

// CallStatus is the state of the call-approval workflow for a match.
// "none" is never stored; it is the derived status when a match has no
// CallRequest rows yet.
type CallStatus string

const (
	CallNone     CallStatus = "none"
	CallPending  CallStatus = "pending"
	CallApproved CallStatus = "approved"
	CallRejected CallStatus = "rejected"
)

// CallRequest is a student's request to hold a live call on an accepted
// match. The partial unique index keeps at most one pending request per
// match; resolved rows stay around as history, and the current call status
// is derived from the latest row via idx_call_match_latest.
type CallRequest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	MatchID     uint       `gorm:"not null;index:idx_call_match_latest,priority:1;uniqueIndex:uniq_pending_call,where:status = 'pending'" json:"matchId"`
	RequesterID uint       `gorm:"not null" json:"requesterId"`
	Status      CallStatus `gorm:"type:text;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"index:idx_call_match_latest,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
