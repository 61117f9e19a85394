package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	DishID uuid.UUID `json:"dish_id"`
	Text   string    `gorm:"type:text" json:"text"`
	Rating int       `json:"rating"` // 1..5

	User *User `gorm:"foreignKey:UserID"`
	Dish *Dish `gorm:"foreignKey:DishID"`
	Timestamp
}
