package entities

import (
	"github.com/google/uuid"
)

type Allergy struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`

	Timestamp
}

type UserAllergy struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	AllergyID uuid.UUID `json:"allergy_id"`

	User    *User    `gorm:"foreignKey:UserID"`
	Allergy *Allergy `gorm:"foreignKey:AllergyID"`
	Timestamp
}

type DishAllergy struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DishID    uuid.UUID `json:"dish_id"`
	AllergyID uuid.UUID `json:"allergy_id"`

	Dish    *Dish    `gorm:"foreignKey:DishID"`
	Allergy *Allergy `gorm:"foreignKey:AllergyID"`
	Timestamp
}
