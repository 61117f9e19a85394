package handlers

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/presenters"
	"School-Canteen-Backend/pkg/subscription"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		GetMySubscriptions(c *fiber.Ctx) error
		BuySubscription(c *fiber.Ctx) error
		GrantSubscription(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *subscriptionHandler) GetMySubscriptions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	subs, err := h.subscriptionService.List(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubs, err)
	}

	return presenters.SuccessResponse(c, subs, fiber.StatusOK, domain.MessageSuccessGetSubs)
}

func (h *subscriptionHandler) BuySubscription(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.BuySubscriptionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBuySub, err)
	}

	if err := h.subscriptionService.Buy(c.Context(), *req, userID); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return presenters.ErrorResponse(c, fiber.StatusPaymentRequired, domain.MessageFailedBuySub, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBuySub, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessBuySub)
}

func (h *subscriptionHandler) GrantSubscription(c *fiber.Ctx) error {
	req := new(domain.GrantSubscriptionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGrant, err)
	}

	if err := h.subscriptionService.Grant(c.Context(), req.UserID, req.MealType, req.Count); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGrant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessGrant)
}
