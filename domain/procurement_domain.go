package domain

import (
	"errors"
	"time"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

var (
	MessageSuccessSubmitRequest  = "purchase request submitted"
	MessageSuccessApproveRequest = "purchase request approved"
	MessageSuccessRejectRequest  = "purchase request rejected"
	MessageSuccessGetRequests    = "purchase requests retrieved successfully"

	MessageFailedSubmitRequest  = "failed to submit purchase request"
	MessageFailedApproveRequest = "failed to approve purchase request"
	MessageFailedRejectRequest  = "failed to reject purchase request"
	MessageFailedGetRequests    = "failed to retrieve purchase requests"

	ErrRequestNotFound   = errors.New("purchase request not found")
	ErrRequestNotPending = errors.New("purchase request is not pending")
)

type (
	SubmitRequestRequest struct {
		ProductID string  `json:"product_id" validate:"required,uuid"`
		Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	}

	PurchaseRequestResponse struct {
		ID          string    `json:"id"`
		ProductID   string    `json:"product_id"`
		ProductName string    `json:"product_name,omitempty"`
		Unit        string    `json:"unit,omitempty"`
		Quantity    float64   `json:"quantity"`
		Status      string    `json:"status"`
		CreatedBy   string    `json:"created_by"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
