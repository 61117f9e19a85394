package handlers

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/presenters"
	"School-Canteen-Backend/pkg/midtrans"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		CreateTopUp(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
		validator       *validator.Validate
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		midtransService: midtransService,
		validator:       validator,
	}
}

func (h *midtransHandler) CreateTopUp(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.TopUpRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTopUp, err)
	}

	resp, err := h.midtransService.CreateTopUp(c.Context(), userID, req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTopUp, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessTopUp)
}

// MidtransWebhookHandler always answers 200 for payloads it cannot act on so
// the gateway stops retrying them.
func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	payload := new(domain.MidtransNotification)
	if err := c.BodyParser(payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), payload); err != nil {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, "notification ignored")
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "notification processed")
}
