package models

import (
	"time"

	"github.com/lib/pq" // Required for pq.StringArray
)

// User roles as carried in the verified identity token.
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
)

// User represents a platform member. Profile attributes are owned by the
// profile/identity side of the system; the match engine only reads them
// for scoring and for the mentor directory.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	UserType string `gorm:"type:text;not null;index" json:"userType"` // "student" | "mentor"

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Major is the field of study (students) or the field studied (mentors).
	Major string `json:"major"`
	// Industry is the sector a mentor currently works in.
	Industry        string `json:"industry"`
	CurrentPosition string `json:"currentPosition"`
	Company         string `json:"company"`
	Bio             string `gorm:"type:text" json:"bio"`

	YearsOfExperience int `json:"yearsOfExperience"`

	// CareerInterests are the areas a student wants guidance in.
	CareerInterests pq.StringArray `gorm:"type:text[]" json:"careerInterests"`
	// ExpertiseAreas are the topics a mentor offers guidance on.
	ExpertiseAreas pq.StringArray `gorm:"type:text[]" json:"expertiseAreas"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsMentor reports whether the user holds the mentor role.
func (u *User) IsMentor() bool { return u.UserType == RoleMentor }

// IsStudent reports whether the user holds the student role.
func (u *User) IsStudent() bool { return u.UserType == RoleStudent }
