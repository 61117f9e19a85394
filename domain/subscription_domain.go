package domain

import (
	"errors"
)

var (
	MessageSuccessGetSubs = "subscriptions retrieved successfully"
	MessageSuccessBuySub  = "subscription purchased successfully"
	MessageSuccessGrant   = "subscription credits granted"

	MessageFailedGetSubs = "failed to retrieve subscriptions"
	MessageFailedBuySub  = "failed to purchase subscription"
	MessageFailedGrant   = "failed to grant subscription credits"

	ErrNoSubscriptionCredit     = errors.New("no subscription credits left")
	ErrSubscriptionAlreadyUsed  = errors.New("subscription already used for this meal today")
	ErrInvalidSubscriptionCount = errors.New("subscription count must be positive")
)

type (
	BuySubscriptionRequest struct {
		MealType string `json:"meal_type" validate:"required,oneof=breakfast lunch"`
		Count    int    `json:"count" validate:"required,min=1"`
	}

	GrantSubscriptionRequest struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		MealType string `json:"meal_type" validate:"required,oneof=breakfast lunch"`
		Count    int    `json:"count" validate:"required,min=1"`
	}

	SubscriptionResponse struct {
		MealType  string `json:"meal_type"`
		MealsLeft int    `json:"meals_left"`
	}
)
