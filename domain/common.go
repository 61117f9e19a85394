package domain

import (
	"errors"
)

const (
	RoleStudent = "student"
	RoleCook    = "cook"
	RoleAdmin   = "admin"

	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
)

// Per-meal subscription prices, used when buying credit packs.
var SubscriptionPrices = map[string]float64{
	MealTypeBreakfast: 100,
	MealTypeLunch:     150,
}

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrUserNotAllowed  = errors.New("user not allowed")
	ErrTokenNotFound   = errors.New("failed to token not found")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrInvalidMealType = errors.New("invalid meal type")
)
