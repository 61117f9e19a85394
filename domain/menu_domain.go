package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetMenu        = "menu retrieved successfully"
	MessageSuccessGetDishes      = "dishes retrieved successfully"
	MessageSuccessCreateDish     = "dish created successfully"
	MessageSuccessDeleteDish     = "dish deleted successfully"
	MessageSuccessToggleDish     = "dish availability toggled"
	MessageSuccessUploadDishFoto = "dish image uploaded successfully"

	MessageFailedGetMenu        = "failed to retrieve menu"
	MessageFailedGetDishes      = "failed to retrieve dishes"
	MessageFailedCreateDish     = "failed to create dish"
	MessageFailedDeleteDish     = "failed to delete dish"
	MessageFailedToggleDish     = "failed to toggle dish availability"
	MessageFailedUploadDishFoto = "failed to upload dish image"

	ErrDishNotFound     = errors.New("dish not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDishUnavailable  = errors.New("dish is not available")
)

type (
	DishIngredientRequest struct {
		ProductID string  `json:"product_id" validate:"required,uuid"`
		Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	}

	CreateDishRequest struct {
		Name        string                  `json:"name" validate:"required"`
		Price       float64                 `json:"price" validate:"required,gt=0"`
		CategoryID  string                  `json:"category_id" validate:"required,uuid"`
		DayOfWeek   int                     `json:"day_of_week" validate:"min=0,max=4"`
		Ingredients []DishIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
		AllergyIDs  []string                `json:"allergy_ids" validate:"omitempty,dive,uuid"`
	}

	UploadDishImageRequest struct {
		DishID string                `json:"dish_id" form:"dish_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DishIngredientResponse struct {
		ProductID   string  `json:"product_id"`
		ProductName string  `json:"product_name"`
		Quantity    float64 `json:"quantity"`
		Unit        string  `json:"unit"`
	}

	DishResponse struct {
		ID          string                   `json:"id"`
		Name        string                   `json:"name"`
		Price       float64                  `json:"price"`
		CategoryID  string                   `json:"category_id"`
		Category    string                   `json:"category,omitempty"`
		DayOfWeek   int                      `json:"day_of_week"`
		IsAvailable bool                     `json:"is_available"`
		IsOrderable bool                     `json:"is_orderable"`
		ImageURL    string                   `json:"image_url,omitempty"`
		Ingredients []DishIngredientResponse `json:"ingredients,omitempty"`
		AllergyIDs  []string                 `json:"allergy_ids,omitempty"`
	}

	MenuCategoryResponse struct {
		CategoryID string         `json:"category_id"`
		Category   string         `json:"category"`
		Dishes     []DishResponse `json:"dishes"`
	}
)
