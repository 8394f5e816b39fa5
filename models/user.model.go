package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	UserName string `json:"userName" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Email    string `json:"email"`
	Role     string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
}

// UserResponse is the user shape returned by the API. It never carries
// the password hash.
type UserResponse struct {
	ID       uint   `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ToResponse maps a User to its API shape
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
