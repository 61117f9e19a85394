package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Text   string    `gorm:"type:text" json:"text"`
	IsRead bool      `json:"is_read"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
