package domain

import (
	"errors"
)

var (
	MessageSuccessAddProduct    = "product added successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessUpdateProduct = "product updated successfully"

	MessageFailedAddProduct    = "failed to add product"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedUpdateProduct = "failed to update product"

	ErrProductNotFound   = errors.New("product not found")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type (
	AddProductRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"required"`
		Price    float64 `json:"price" validate:"min=0"`
	}

	UpdateProductRequest struct {
		Quantity *float64 `json:"quantity" validate:"omitempty,min=0"`
		Price    *float64 `json:"price" validate:"omitempty,min=0"`
	}

	ProductResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Price    float64 `json:"price"`
	}
)
