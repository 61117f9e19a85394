package handlers

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/presenters"
	"School-Canteen-Backend/pkg/report"

	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetPaymentStats(c *fiber.Ctx) error
		GetOrderStats(c *fiber.Ctx) error
		GetClassAttendance(c *fiber.Ctx) error
		GetPopularDishes(c *fiber.Ctx) error
		GetFinancialReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

func (h *reportHandler) GetPaymentStats(c *fiber.Ctx) error {
	stats, err := h.reportService.PaymentStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetOrderStats(c *fiber.Ctx) error {
	stats, err := h.reportService.OrderStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetClassAttendance(c *fiber.Ctx) error {
	attendance, err := h.reportService.ClassAttendanceToday(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, attendance, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetPopularDishes(c *fiber.Ctx) error {
	dishes, err := h.reportService.PopularDishesToday(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, dishes, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetFinancialReport(c *fiber.Ctx) error {
	financial, err := h.reportService.FinancialReport(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, financial, fiber.StatusOK, domain.MessageSuccessGetReport)
}
