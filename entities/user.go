package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username   string    `gorm:"uniqueIndex" json:"username"`
	Email      string    `json:"email,omitempty"`
	Password   string    `json:"-"`
	Role       string    `json:"role"` // student, cook, admin
	Balance    float64   `json:"balance"`
	FullName   string    `json:"full_name"`
	ClassName  string    `json:"class_name,omitempty"`
	IsApproved bool      `json:"is_approved"`

	Timestamp
}
