package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddReview  = "review added successfully"
	MessageSuccessGetReviews = "reviews retrieved successfully"

	MessageFailedAddReview  = "failed to add review"
	MessageFailedGetReviews = "failed to retrieve reviews"

	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type (
	AddReviewRequest struct {
		DishID string `json:"dish_id" validate:"required,uuid"`
		Text   string `json:"text" validate:"required"`
		Rating int    `json:"rating" validate:"required,min=1,max=5"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		UserName  string    `json:"user_name"`
		DishID    string    `json:"dish_id"`
		DishName  string    `json:"dish_name,omitempty"`
		Text      string    `json:"text"`
		Rating    int       `json:"rating"`
		CreatedAt time.Time `json:"created_at"`
	}
)
