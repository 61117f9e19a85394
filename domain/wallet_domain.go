package domain

import (
	"errors"
	"time"
)

const (
	PaymentTypeDeposit      = "deposit"
	PaymentTypePurchase     = "purchase"
	PaymentTypeSubscription = "subscription"
)

var (
	MessageSuccessGetBalance = "balance retrieved successfully"
	MessageSuccessTopUp      = "top up invoice created"
	MessageSuccessPayments   = "payments retrieved successfully"

	MessageFailedGetBalance = "failed to retrieve balance"
	MessageFailedTopUp      = "failed to create top up invoice"
	MessageFailedPayments   = "failed to retrieve payments"

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrTopUpNotFound     = errors.New("top up not found")
	ErrPaymentGateway    = errors.New("payment gateway rejected the transaction")
)

type (
	TopUpRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
		Email  string  `json:"email" validate:"required,email"`
	}

	TopUpResponse struct {
		OrderRef   string `json:"order_ref"`
		InvoiceURL string `json:"invoice_url"`
	}

	BalanceResponse struct {
		Balance float64 `json:"balance"`
	}

	// MidtransNotification carries the fields of the gateway webhook payload
	// this service acts on. Everything else in the payload is ignored.
	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}

	PaymentResponse struct {
		ID          string    `json:"id"`
		Amount      float64   `json:"amount"`
		PaymentType string    `json:"payment_type"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
