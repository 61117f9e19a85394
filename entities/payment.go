package entities

import (
	"github.com/google/uuid"
)

type Payment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      float64   `json:"amount"`
	PaymentType string    `json:"payment_type"` // deposit, purchase, subscription

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// TopUp tracks a Midtrans invoice for a balance deposit until the gateway
// settles it through the webhook.
type TopUp struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Amount   float64   `json:"amount"`
	OrderRef string    `gorm:"uniqueIndex" json:"order_ref"`
	Status   string    `json:"status"` // pending, settled, failed

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
