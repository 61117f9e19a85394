package handlers

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/presenters"
	"School-Canteen-Backend/pkg/order"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		GetMyOrders(c *fiber.Ctx) error
		GetOrdersToPrepare(c *fiber.Ctx) error
		GetIssuedToday(c *fiber.Ctx) error
		CookLine(c *fiber.Ctx) error
		MarkPrepared(c *fiber.Ctx) error
		MarkReceived(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.PlaceOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	resp, err := h.orderService.PlaceOrder(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrNoSubscriptionCredit) {
			return presenters.ErrorResponse(c, fiber.StatusPaymentRequired, domain.MessageFailedPlaceOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessPlaceOrder)
}

func (h *orderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetUserOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrdersToPrepare(c *fiber.Ctx) error {
	orders, err := h.orderService.GetOrdersToPrepare(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetIssuedToday(c *fiber.Ctx) error {
	orders, err := h.orderService.GetIssuedToday(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) CookLine(c *fiber.Ctx) error {
	lineID := c.Params("id")
	if lineID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookLine, domain.ErrOrderLineNotFound)
	}

	if err := h.orderService.CookLine(c.Context(), lineID); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCookLine, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookLine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCookLine)
}

func (h *orderHandler) MarkPrepared(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPrepareOrder, domain.ErrOrderNotFound)
	}

	if err := h.orderService.MarkPrepared(c.Context(), orderID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPrepareOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPrepareOrder)
}

func (h *orderHandler) MarkReceived(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orderID := c.Params("id")
	if orderID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReceiveOrder, domain.ErrOrderNotFound)
	}

	if err := h.orderService.MarkReceived(c.Context(), orderID, userID); err != nil {
		if errors.Is(err, domain.ErrNotOrderOwner) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedReceiveOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReceiveOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReceiveOrder)
}
