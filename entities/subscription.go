package entities

import (
	"github.com/google/uuid"
)

type Subscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index:idx_subscriptions_user_meal,unique" json:"user_id"`
	MealType  string    `gorm:"index:idx_subscriptions_user_meal,unique" json:"meal_type"`
	MealsLeft int       `json:"meals_left"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
