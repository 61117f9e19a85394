package handlers

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/presenters"
	"School-Canteen-Backend/pkg/menu"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenuToday(c *fiber.Ctx) error
		GetUniqueDishes(c *fiber.Ctx) error
		GetDish(c *fiber.Ctx) error
		CreateDish(c *fiber.Ctx) error
		DeleteDish(c *fiber.Ctx) error
		ToggleAvailability(c *fiber.Ctx) error
		UploadDishImage(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

// school week runs Monday (0) through Friday (4)
func currentSchoolDay() int {
	day := int(time.Now().Weekday()) - 1
	if day < 0 || day > 4 {
		day = 0
	}
	return day
}

func (h *menuHandler) GetMenuToday(c *fiber.Ctx) error {
	mealType := c.Query("meal_type", domain.MealTypeBreakfast)

	day, err := strconv.Atoi(c.Query("day", strconv.Itoa(currentSchoolDay())))
	if err != nil || day < 0 || day > 4 {
		day = currentSchoolDay()
	}

	categories, err := h.menuService.GetMenuByDay(c.Context(), day, mealType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"day":        day,
		"meal_type":  mealType,
		"categories": categories,
	}, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) GetUniqueDishes(c *fiber.Ctx) error {
	mealType := c.Query("meal_type", domain.MealTypeBreakfast)

	dishes, err := h.menuService.GetUniqueDishes(c.Context(), mealType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, dishes, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *menuHandler) GetDish(c *fiber.Ctx) error {
	dishID := c.Params("id")
	if dishID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDishes, domain.ErrDishNotFound)
	}

	dish, err := h.menuService.GetDish(c.Context(), dishID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, dish, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *menuHandler) CreateDish(c *fiber.Ctx) error {
	req := new(domain.CreateDishRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	dish, err := h.menuService.CreateDish(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	return presenters.SuccessResponse(c, dish, fiber.StatusCreated, domain.MessageSuccessCreateDish)
}

func (h *menuHandler) DeleteDish(c *fiber.Ctx) error {
	dishID := c.Params("id")
	if dishID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteDish, domain.ErrDishNotFound)
	}

	if err := h.menuService.DeleteDish(c.Context(), dishID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDish)
}

func (h *menuHandler) ToggleAvailability(c *fiber.Ctx) error {
	dishID := c.Params("id")
	if dishID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleDish, domain.ErrDishNotFound)
	}

	if err := h.menuService.ToggleAvailability(c.Context(), dishID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessToggleDish)
}

func (h *menuHandler) UploadDishImage(c *fiber.Ctx) error {
	req := new(domain.UploadDishImageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDishFoto, err)
	}

	url, err := h.menuService.UploadDishImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDishFoto, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"image_url": url,
	}, fiber.StatusOK, domain.MessageSuccessUploadDishFoto)
}
