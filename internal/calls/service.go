// Package calls implements the call-approval workflow layered on top of an
// accepted match: the student asks for a live call, the mentor approves or
// rejects, and the current status is derived from the latest request row.
package calls

import (
	"errors"
	"fmt"
	"log"

	"mentorgo/backend/internal/apperr"
	"mentorgo/backend/internal/models"
	"mentorgo/backend/internal/storage"
)

// Clients key on this exact message to treat a duplicate request as the
// existing pending state rather than a hard failure.
const pendingExistsMsg = "pending request already exists"

// Service handles the call-request workflow.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new call-request service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Request creates a pending call request on an accepted match. Only the
// student side may request. A match with an unresolved request yields a
// conflict carrying the pending-exists message; callers may treat that as
// the existing pending state.
func (s *Service) Request(matchID, requesterID uint) (*models.CallRequest, error) {
	match, err := s.Storage.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if match.StudentID != requesterID {
		return nil, fmt.Errorf("%w: only the match's student can request a call", apperr.ErrForbidden)
	}
	if match.Status != models.MatchAccepted {
		return nil, fmt.Errorf("%w: match is not accepted", apperr.ErrInvalidState)
	}

	latest, err := s.Storage.GetLatestCallRequest(matchID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.Status == models.CallPending {
		return nil, fmt.Errorf("%w: %s", apperr.ErrConflict, pendingExistsMsg)
	}

	req := &models.CallRequest{
		MatchID:     matchID,
		RequesterID: requesterID,
		Status:      models.CallPending,
	}
	// Two concurrent requests can both see no pending row; the partial
	// unique index lets exactly one insert win.
	if err := s.Storage.CreateCallRequest(req); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrConflict, pendingExistsMsg)
		}
		return nil, err
	}

	log.Printf("INFO: call request %d created on match %d by student %d", req.ID, matchID, requesterID)
	return req, nil
}

// Respond lets the match's mentor approve or reject a pending call request.
func (s *Service) Respond(requestID, actingMentorID uint, status models.CallStatus) (*models.CallRequest, error) {
	if status != models.CallApproved && status != models.CallRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", apperr.ErrInvalidState)
	}

	req, err := s.Storage.GetCallRequestByID(requestID)
	if err != nil {
		return nil, err
	}

	match, err := s.Storage.GetMatchByID(req.MatchID)
	if err != nil {
		return nil, err
	}
	if match.MentorID != actingMentorID {
		return nil, fmt.Errorf("%w: only the match's mentor can respond", apperr.ErrForbidden)
	}

	if err := s.Storage.UpdateCallRequestStatus(requestID, models.CallPending, status); err != nil {
		return nil, err
	}

	req.Status = status
	log.Printf("INFO: call request %d %s by mentor %d", requestID, status, actingMentorID)
	return req, nil
}

// Status derives the current call status of a match from its latest request
// row, defaulting to none. Restricted to match participants.
func (s *Service) Status(matchID, userID uint) (models.CallStatus, error) {
	match, err := s.Storage.GetMatchByID(matchID)
	if err != nil {
		return models.CallNone, err
	}
	if !match.HasParticipant(userID) {
		return models.CallNone, fmt.Errorf("%w: not a participant of this match", apperr.ErrForbidden)
	}

	latest, err := s.Storage.GetLatestCallRequest(matchID)
	if err != nil {
		return models.CallNone, err
	}
	if latest == nil {
		return models.CallNone, nil
	}
	return latest.Status, nil
}

// PendingForMentor lists every pending call request across the mentor's
// matches, oldest first.
func (s *Service) PendingForMentor(mentorID uint) ([]models.CallRequest, error) {
	return s.Storage.GetPendingCallRequestsForMentor(mentorID)
}
