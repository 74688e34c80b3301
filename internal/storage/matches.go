package storage

import (
	"mentorgo/backend/internal/apperr"
	"mentorgo/backend/internal/models"
)

// CreateMatch inserts a new pending match. The uniq_active_pair partial index
// turns a racing duplicate into apperr.ErrConflict.
func (s *Service) CreateMatch(match *models.Match) error {
	return dbError(s.DB.Create(match).Error)
}

// GetMatchByID loads one match row.
func (s *Service) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match
	if err := s.DB.First(&match, id).Error; err != nil {
		return nil, dbError(err)
	}
	return &match, nil
}

// GetMatchesForUser returns every match (any status) the user participates
// in, most recent first.
func (s *Service) GetMatchesForUser(userID uint) ([]models.Match, error) {
	var matches []models.Match
	err := s.DB.Where("student_id = ? OR mentor_id = ?", userID, userID).
		Order("created_at desc").
		Find(&matches).Error
	if err != nil {
		return nil, dbError(err)
	}
	return matches, nil
}

// HasActiveMatch reports whether a pending or accepted match exists for the
// pair.
func (s *Service) HasActiveMatch(studentID, mentorID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Match{}).
		Where("student_id = ? AND mentor_id = ? AND status <> ?",
			studentID, mentorID, models.MatchRejected).
		Count(&count).Error
	if err != nil {
		return false, dbError(err)
	}
	return count > 0, nil
}

// UpdateMatchStatus transitions a match from one status to another with a
// conditional update, so two concurrent responders cannot both move the row
// out of pending. RowsAffected == 0 means the row was missing or already in
// another state.
func (s *Service) UpdateMatchStatus(matchID uint, from, to models.MatchStatus) error {
	result := s.DB.Model(&models.Match{}).
		Where("id = ? AND status = ?", matchID, from).
		Update("status", to)
	if result.Error != nil {
		return dbError(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.DB.Model(&models.Match{}).Where("id = ?", matchID).Count(&count).Error; err != nil {
			return dbError(err)
		}
		if count == 0 {
			return apperr.ErrNotFound
		}
		return apperr.ErrInvalidState
	}
	return nil
}
