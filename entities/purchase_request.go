package entities

import (
	"github.com/google/uuid"
)

type PurchaseRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  float64   `json:"quantity"`
	Status    string    `json:"status"` // pending, approved, rejected
	CreatedBy uuid.UUID `json:"created_by"`
	// Product price captured when the request is approved, so expense
	// reports stay correct after later price edits.
	ApprovedPrice float64 `json:"approved_price"`

	Product   *Product `gorm:"foreignKey:ProductID"`
	Requester *User    `gorm:"foreignKey:CreatedBy"`
	Timestamp
}
