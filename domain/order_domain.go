package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder   = "order placed successfully"
	MessageSuccessGetOrders    = "orders retrieved successfully"
	MessageSuccessCookLine     = "dish cooked"
	MessageSuccessPrepareOrder = "order marked as prepared"
	MessageSuccessReceiveOrder = "order received"

	MessageFailedPlaceOrder   = "failed to place order"
	MessageFailedGetOrders    = "failed to retrieve orders"
	MessageFailedCookLine     = "failed to cook dish"
	MessageFailedPrepareOrder = "failed to mark order as prepared"
	MessageFailedReceiveOrder = "failed to receive order"

	ErrEmptyOrder          = errors.New("no dishes selected")
	ErrUnavailableDish     = errors.New("one of the selected dishes is unavailable")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderLineNotFound   = errors.New("order line not found")
	ErrLineAlreadyCooked   = errors.New("dish is already cooked")
	ErrOrderNotFullyCooked = errors.New("not all dishes of the order are cooked")
	ErrAlreadyPrepared     = errors.New("order is already prepared")
	ErrOrderNotPrepared    = errors.New("order is not prepared yet")
	ErrAlreadyReceived     = errors.New("order is already received")
	ErrNotOrderOwner       = errors.New("order belongs to another user")
)

type (
	PlaceOrderRequest struct {
		MealType        string   `json:"meal_type" validate:"required,oneof=breakfast lunch"`
		DishIDs         []string `json:"dish_ids" validate:"required,min=1,dive,uuid"`
		UseSubscription bool     `json:"use_subscription"`
	}

	PlaceOrderResponse struct {
		OrderID        string  `json:"order_id"`
		Total          float64 `json:"total"`
		IsSubscription bool    `json:"is_subscription"`
	}

	OrderLineResponse struct {
		ID       string  `json:"id"`
		DishID   string  `json:"dish_id"`
		DishName string  `json:"dish_name,omitempty"`
		Price    float64 `json:"price"`
		IsCooked bool    `json:"is_cooked"`
		// CanCook is set only on the kitchen view for lines still to be
		// cooked; a pointer so false survives serialization.
		CanCook *bool `json:"can_cook,omitempty"`
	}

	OrderResponse struct {
		ID             string              `json:"id"`
		UserID         string              `json:"user_id"`
		UserName       string              `json:"user_name,omitempty"`
		ClassName      string              `json:"class_name,omitempty"`
		Date           time.Time           `json:"date"`
		MealType       string              `json:"meal_type"`
		IsSubscription bool                `json:"is_subscription"`
		IsPrepared     bool                `json:"is_prepared"`
		IsReceived     bool                `json:"is_received"`
		Total          float64             `json:"total"`
		Lines          []OrderLineResponse `json:"lines"`
		CreatedAt      time.Time           `json:"created_at"`
	}
)
