package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Date           time.Time `gorm:"type:date" json:"date"`
	MealType       string    `json:"meal_type"` // breakfast, lunch
	IsSubscription bool      `json:"is_subscription"`
	IsPrepared     bool      `json:"is_prepared"`
	IsReceived     bool      `json:"is_received"`

	User  *User        `gorm:"foreignKey:UserID"`
	Lines []*OrderLine `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderLine keeps the dish price as it was at order time; later price edits
// on the dish must not change what the student was charged.
type OrderLine struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID  uuid.UUID `json:"order_id"`
	DishID   uuid.UUID `json:"dish_id"`
	Price    float64   `json:"price"`
	IsCooked bool      `json:"is_cooked"`

	Dish *Dish `gorm:"foreignKey:DishID"`
	Timestamp
}
