package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	MealType string    `json:"meal_type"` // breakfast, lunch

	Timestamp
}

// Dish rows sharing a name form a dish family: the same dish scheduled on
// different days of the week. Availability is a family-level property.
type Dish struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	CategoryID  uuid.UUID `json:"category_id"`
	DayOfWeek   int       `json:"day_of_week"` // 0 = Monday .. 4 = Friday
	IsAvailable bool      `json:"is_available"`
	ImageURL    string    `json:"image_url,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type DishIngredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DishID    uuid.UUID `json:"dish_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  float64   `json:"quantity"` // per single serving of the dish

	Dish    *Dish    `gorm:"foreignKey:DishID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
