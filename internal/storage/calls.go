package storage

import (
	"errors"

	"mentorgo/backend/internal/apperr"
	"mentorgo/backend/internal/models"

	"gorm.io/gorm"
)

// CreateCallRequest inserts a new pending call request. The uniq_pending_call
// partial index rejects a second pending row for the same match, which
// surfaces as apperr.ErrConflict.
func (s *Service) CreateCallRequest(req *models.CallRequest) error {
	return dbError(s.DB.Create(req).Error)
}

// GetCallRequestByID loads one call request row.
func (s *Service) GetCallRequestByID(id uint) (*models.CallRequest, error) {
	var req models.CallRequest
	if err := s.DB.First(&req, id).Error; err != nil {
		return nil, dbError(err)
	}
	return &req, nil
}

// GetLatestCallRequest returns the most recent call request for a match, or
// nil when the match has none. The current call status is derived from this
// row.
func (s *Service) GetLatestCallRequest(matchID uint) (*models.CallRequest, error) {
	var req models.CallRequest
	err := s.DB.Where("match_id = ?", matchID).
		Order("created_at desc").
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err)
	}
	return &req, nil
}

// GetPendingCallRequestsForMentor returns every pending call request across
// all of the mentor's matches, oldest first, to drive the approval list.
func (s *Service) GetPendingCallRequestsForMentor(mentorID uint) ([]models.CallRequest, error) {
	var reqs []models.CallRequest
	err := s.DB.
		Joins("JOIN matches ON matches.id = call_requests.match_id").
		Where("matches.mentor_id = ? AND call_requests.status = ?", mentorID, models.CallPending).
		Order("call_requests.created_at asc").
		Find(&reqs).Error
	if err != nil {
		return nil, dbError(err)
	}
	return reqs, nil
}

// UpdateCallRequestStatus transitions a call request with the same
// conditional-update discipline as matches.
func (s *Service) UpdateCallRequestStatus(requestID uint, from, to models.CallStatus) error {
	result := s.DB.Model(&models.CallRequest{}).
		Where("id = ? AND status = ?", requestID, from).
		Update("status", to)
	if result.Error != nil {
		return dbError(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.DB.Model(&models.CallRequest{}).Where("id = ?", requestID).Count(&count).Error; err != nil {
			return dbError(err)
		}
		if count == 0 {
			return apperr.ErrNotFound
		}
		return apperr.ErrInvalidState
	}
	return nil
}
