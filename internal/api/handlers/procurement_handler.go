package handlers

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/presenters"
	"School-Canteen-Backend/pkg/procurement"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProcurementHandler interface {
		SubmitRequest(c *fiber.Ctx) error
		ApproveRequest(c *fiber.Ctx) error
		RejectRequest(c *fiber.Ctx) error
		GetPendingRequests(c *fiber.Ctx) error
		GetMyRequests(c *fiber.Ctx) error
		GetAllRequests(c *fiber.Ctx) error
	}

	procurementHandler struct {
		procurementService procurement.ProcurementService
		validator          *validator.Validate
	}
)

func NewProcurementHandler(procurementService procurement.ProcurementService, validator *validator.Validate) ProcurementHandler {
	return &procurementHandler{
		procurementService: procurementService,
		validator:          validator,
	}
}

func (h *procurementHandler) SubmitRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SubmitRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRequest, err)
	}

	resp, err := h.procurementService.Submit(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRequest, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessSubmitRequest)
}

func (h *procurementHandler) ApproveRequest(c *fiber.Ctx) error {
	requestID := c.Params("id")
	if requestID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveRequest, domain.ErrRequestNotFound)
	}

	if err := h.procurementService.Approve(c.Context(), requestID); err != nil {
		if errors.Is(err, domain.ErrRequestNotPending) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedApproveRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveRequest)
}

func (h *procurementHandler) RejectRequest(c *fiber.Ctx) error {
	requestID := c.Params("id")
	if requestID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectRequest, domain.ErrRequestNotFound)
	}

	if err := h.procurementService.Reject(c.Context(), requestID); err != nil {
		if errors.Is(err, domain.ErrRequestNotPending) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRejectRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectRequest)
}

func (h *procurementHandler) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := h.procurementService.Pending(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *procurementHandler) GetMyRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	requests, err := h.procurementService.ByUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *procurementHandler) GetAllRequests(c *fiber.Ctx) error {
	requests, err := h.procurementService.All(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetRequests)
}
