package models

import "time"

// MatchStatus is the lifecycle state of a mentorship match.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Valid reports whether s is a known match status.
func (s MatchStatus) Valid() bool {
	return s == MatchPending || s == MatchAccepted || s == MatchRejected
}

// Terminal reports whether no further transition is allowed out of s.
func (s MatchStatus) Terminal() bool {
	return s == MatchAccepted || s == MatchRejected
}

// Match is a proposed or confirmed pairing between one student and one mentor.
// The partial unique index keeps at most one non-rejected row per pair, so a
// rejected match never blocks a fresh request while pending/accepted ones do.
type Match struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StudentID uint `gorm:"not null;index;uniqueIndex:uniq_active_pair,where:status <> 'rejected'" json:"studentId"`
	MentorID  uint `gorm:"not null;index;uniqueIndex:uniq_active_pair,where:status <> 'rejected'" json:"mentorId"`

	Status     MatchStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	MatchScore float64     `json:"matchScore"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasParticipant reports whether userID is the student or the mentor of the match.
func (m *Match) HasParticipant(userID uint) bool {
	return m.StudentID == userID || m.MentorID == userID
}

// CounterpartOf returns the other participant's ID, or 0 if userID is not a
// participant.
func (m *Match) CounterpartOf(userID uint) uint {
	switch userID {
	case m.StudentID:
		return m.MentorID
	case m.MentorID:
		return m.StudentID
	}
	return 0
}

// MentorSuggestion is one row of the suggestion list: a mentor profile plus
// the computed compatibility score.
type MentorSuggestion struct {
	User
	MatchScore float64 `json:"matchScore"`
}
