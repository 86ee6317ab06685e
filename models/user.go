package models

import (
	"gorm.io/gorm"
)

// User represents a student account in the system.
type User struct {
	gorm.Model
	Username          string `gorm:"uniqueIndex;not null" json:"username"`
	Email             string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string `gorm:"not null" json:"-"`
	FullName          string `json:"full_name"`
	Bio               string `json:"bio"`
	AcademicInterests string `json:"academic_interests"`
}

// PublicUser is the subset of a user record that is safe to return to
// clients. The password hash never leaves the server.
type PublicUser struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	FullName          string `json:"full_name"`
	Bio               string `json:"bio"`
	AcademicInterests string `json:"academic_interests"`
}

// Public builds the client-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FullName:          u.FullName,
		Bio:               u.Bio,
		AcademicInterests: u.AcademicInterests,
	}
}
