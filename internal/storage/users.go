package storage

import (
	"mentorgo/backend/internal/models"
)

// GetUserByID loads a single user row.
func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, dbError(err)
	}
	return &user, nil
}

// GetMentors returns every mentor profile, newest first. Backs the mentor
// directory page.
func (s *Service) GetMentors() ([]models.User, error) {
	var mentors []models.User
	err := s.DB.Where("user_type = ?", models.RoleMentor).
		Order("created_at desc").
		Find(&mentors).Error
	if err != nil {
		return nil, dbError(err)
	}
	return mentors, nil
}

// GetAvailableMentors returns mentors that have no pending or accepted match
// with the given student. Rejected matches do not exclude a mentor.
func (s *Service) GetAvailableMentors(studentID uint) ([]models.User, error) {
	var mentors []models.User
	err := s.DB.Where("user_type = ?", models.RoleMentor).
		Where("id NOT IN (?)",
			s.DB.Model(&models.Match{}).
				Select("mentor_id").
				Where("student_id = ? AND status <> ?", studentID, models.MatchRejected),
		).
		Order("id asc").
		Find(&mentors).Error
	if err != nil {
		return nil, dbError(err)
	}
	return mentors, nil
}
