package handlers

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/presenters"
	"School-Canteen-Backend/pkg/wallet"

	"github.com/gofiber/fiber/v2"
)

type (
	WalletHandler interface {
		GetBalance(c *fiber.Ctx) error
		GetPayments(c *fiber.Ctx) error
	}

	walletHandler struct {
		walletService wallet.WalletService
	}
)

func NewWalletHandler(walletService wallet.WalletService) WalletHandler {
	return &walletHandler{
		walletService: walletService,
	}
}

func (h *walletHandler) GetBalance(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	balance, err := h.walletService.Balance(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBalance, err)
	}

	return presenters.SuccessResponse(c, balance, fiber.StatusOK, domain.MessageSuccessGetBalance)
}

func (h *walletHandler) GetPayments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	payments, err := h.walletService.Payments(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPayments, err)
	}

	return presenters.SuccessResponse(c, payments, fiber.StatusOK, domain.MessageSuccessPayments)
}
