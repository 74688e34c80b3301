package matching

import (
	"fmt"
	"log"
	"sort"

	"mentorgo/backend/internal/apperr"
	"mentorgo/backend/internal/models"
	"mentorgo/backend/internal/storage"
)

// Service owns the match lifecycle: suggestions, requests, and the
// pending -> accepted/rejected state machine.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new matching service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Suggest returns every mentor without an active match for the student,
// ranked by descending score. Ties are broken by ascending mentor ID so the
// ranking is reproducible.
func (s *Service) Suggest(studentID uint) ([]models.MentorSuggestion, error) {
	student, err := s.Storage.GetUserByID(studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, fmt.Errorf("%w: only students receive suggestions", apperr.ErrForbidden)
	}

	mentors, err := s.Storage.GetAvailableMentors(studentID)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.MentorSuggestion, 0, len(mentors))
	for i := range mentors {
		suggestions = append(suggestions, models.MentorSuggestion{
			User:       mentors[i],
			MatchScore: Score(student, &mentors[i]),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].MatchScore != suggestions[j].MatchScore {
			return suggestions[i].MatchScore > suggestions[j].MatchScore
		}
		return suggestions[i].User.ID < suggestions[j].User.ID
	})

	return suggestions, nil
}

// RequestMatch creates a pending match from a student to a mentor with a
// freshly computed score. An existing pending or accepted match for the pair
// is a conflict; a rejected one is history and does not block.
func (s *Service) RequestMatch(studentID, mentorID uint) (*models.Match, error) {
	student, err := s.Storage.GetUserByID(studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, fmt.Errorf("%w: only students can request matches", apperr.ErrForbidden)
	}

	mentor, err := s.Storage.GetUserByID(mentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.IsMentor() {
		return nil, fmt.Errorf("%w: target user is not a mentor", apperr.ErrNotFound)
	}

	active, err := s.Storage.HasActiveMatch(studentID, mentorID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, fmt.Errorf("%w: active match already exists", apperr.ErrConflict)
	}

	match := &models.Match{
		StudentID:  studentID,
		MentorID:   mentorID,
		Status:     models.MatchPending,
		MatchScore: Score(student, mentor),
	}
	// The partial unique index catches the race where two requests pass the
	// HasActiveMatch check at the same time.
	if err := s.Storage.CreateMatch(match); err != nil {
		return nil, err
	}

	log.Printf("INFO: match %d requested by student %d for mentor %d (score %.0f)",
		match.ID, studentID, mentorID, match.MatchScore)
	return match, nil
}

// Respond lets the match's mentor accept or reject a pending match. Both
// outcomes are terminal.
func (s *Service) Respond(matchID, actingMentorID uint, status models.MatchStatus) (*models.Match, error) {
	if status != models.MatchAccepted && status != models.MatchRejected {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", apperr.ErrInvalidState)
	}

	match, err := s.Storage.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if match.MentorID != actingMentorID {
		return nil, fmt.Errorf("%w: only the match's mentor can respond", apperr.ErrForbidden)
	}

	if err := s.Storage.UpdateMatchStatus(matchID, models.MatchPending, status); err != nil {
		return nil, err
	}

	match.Status = status
	log.Printf("INFO: match %d %s by mentor %d", matchID, status, actingMentorID)
	return match, nil
}

// ListForUser returns every match the user participates in, any status,
// most recent first.
func (s *Service) ListForUser(userID uint) ([]models.Match, error) {
	return s.Storage.GetMatchesForUser(userID)
}
