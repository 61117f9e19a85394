package menu

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/internal/utils/storage"
	"School-Canteen-Backend/pkg/inventory"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		GetMenuByDay(ctx context.Context, dayOfWeek int, mealType string) ([]*domain.MenuCategoryResponse, error)
		GetUniqueDishes(ctx context.Context, mealType string) ([]*domain.DishResponse, error)
		GetDish(ctx context.Context, dishID string) (*domain.DishResponse, error)
		GetCategories(ctx context.Context, mealType string) ([]*entities.Category, error)
		CreateDish(ctx context.Context, req domain.CreateDishRequest) (*domain.DishResponse, error)
		DeleteDish(ctx context.Context, dishID string) error
		ToggleAvailability(ctx context.Context, dishID string) error
		UploadDishImage(ctx context.Context, req domain.UploadDishImageRequest) (string, error)

		IngredientsFor(ctx context.Context, dishID string) ([]*domain.DishIngredientResponse, error)
		IsFulfillable(ctx context.Context, dishID string) (bool, error)
		IsOrderable(ctx context.Context, dishID string) (bool, error)
	}

	menuService struct {
		menuRepository      MenuRepository
		inventoryRepository inventory.InventoryRepository
		s3                  storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, inventoryRepository inventory.InventoryRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository:      menuRepository,
		inventoryRepository: inventoryRepository,
		s3:                  s3,
	}
}

func (s *menuService) GetMenuByDay(ctx context.Context, dayOfWeek int, mealType string) ([]*domain.MenuCategoryResponse, error) {
	dishes, err := s.menuRepository.GetDishesByDay(ctx, dayOfWeek, mealType)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*domain.MenuCategoryResponse)
	order := make([]string, 0)
	for _, dish := range dishes {
		resp, err := s.toDishResponse(ctx, dish)
		if err != nil {
			return nil, err
		}

		key := dish.CategoryID.String()
		group, ok := byCategory[key]
		if !ok {
			group = &domain.MenuCategoryResponse{CategoryID: key}
			if dish.Category != nil {
				group.Category = dish.Category.Name
			}
			byCategory[key] = group
			order = append(order, key)
		}
		group.Dishes = append(group.Dishes, *resp)
	}

	result := make([]*domain.MenuCategoryResponse, 0, len(order))
	for _, key := range order {
		result = append(result, byCategory[key])
	}
	return result, nil
}

// GetUniqueDishes collapses dish families to one entry per name, for the
// cook's catalog and the student's ordering view.
func (s *menuService) GetUniqueDishes(ctx context.Context, mealType string) ([]*domain.DishResponse, error) {
	dishes, err := s.menuRepository.GetDishesByMeal(ctx, mealType)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	result := make([]*domain.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		if seen[dish.Name] {
			continue
		}
		seen[dish.Name] = true

		resp, err := s.toDishResponse(ctx, dish)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *menuService) GetDish(ctx context.Context, dishID string) (*domain.DishResponse, error) {
	dish, err := s.menuRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDishNotFound
		}
		return nil, err
	}
	return s.toDishResponse(ctx, dish)
}

func (s *menuService) GetCategories(ctx context.Context, mealType string) ([]*entities.Category, error) {
	return s.menuRepository.GetCategories(ctx, mealType)
}

func (s *menuService) CreateDish(ctx context.Context, req domain.CreateDishRequest) (*domain.DishResponse, error) {
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if _, err := s.menuRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	dish := &entities.Dish{
		ID:          uuid.New(),
		Name:        req.Name,
		Price:       req.Price,
		CategoryID:  categoryUUID,
		DayOfWeek:   req.DayOfWeek,
		IsAvailable: true,
	}
	if err := s.menuRepository.CreateDish(ctx, dish); err != nil {
		return nil, err
	}

	for _, ing := range req.Ingredients {
		productUUID, err := uuid.Parse(ing.ProductID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if _, err := s.inventoryRepository.GetProductByID(ctx, ing.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrProductNotFound
			}
			return nil, err
		}
		entry := &entities.DishIngredient{
			ID:        uuid.New(),
			DishID:    dish.ID,
			ProductID: productUUID,
			Quantity:  ing.Quantity,
		}
		if err := s.menuRepository.CreateDishIngredient(ctx, entry); err != nil {
			return nil, err
		}
	}

	for _, allergyID := range req.AllergyIDs {
		allergyUUID, err := uuid.Parse(allergyID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		entry := &entities.DishAllergy{
			ID:        uuid.New(),
			DishID:    dish.ID,
			AllergyID: allergyUUID,
		}
		if err := s.menuRepository.CreateDishAllergy(ctx, entry); err != nil {
			return nil, err
		}
	}

	return s.toDishResponse(ctx, dish)
}

func (s *menuService) DeleteDish(ctx context.Context, dishID string) error {
	if _, err := s.menuRepository.GetDishByID(ctx, dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}
	return s.menuRepository.DeleteDish(ctx, dishID)
}

// ToggleAvailability flips the availability flag for every row sharing the
// dish's name, not only for the given id.
func (s *menuService) ToggleAvailability(ctx context.Context, dishID string) error {
	dish, err := s.menuRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}
	return s.menuRepository.UpdateAvailabilityByName(ctx, dish.Name, !dish.IsAvailable)
}

func (s *menuService) UploadDishImage(ctx context.Context, req domain.UploadDishImageRequest) (string, error) {
	dish, err := s.menuRepository.GetDishByID(ctx, req.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrDishNotFound
		}
		return "", err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("dish-%s", dish.ID.String()),
		req.Image,
		"dishes",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	if err := s.menuRepository.UpdateDishImage(ctx, req.DishID, imageURL); err != nil {
		return "", err
	}
	return imageURL, nil
}

func (s *menuService) IngredientsFor(ctx context.Context, dishID string) ([]*domain.DishIngredientResponse, error) {
	ingredients, err := s.menuRepository.GetDishIngredients(ctx, dishID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DishIngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		entry := &domain.DishIngredientResponse{
			ProductID: ing.ProductID.String(),
			Quantity:  ing.Quantity,
		}
		if ing.Product != nil {
			entry.ProductName = ing.Product.Name
			entry.Unit = ing.Product.Unit
		}
		result = append(result, entry)
	}
	return result, nil
}

// IsFulfillable reports whether every recipe entry of the dish can be
// satisfied from current stock. A dish without a recipe is always
// fulfillable.
func (s *menuService) IsFulfillable(ctx context.Context, dishID string) (bool, error) {
	ingredients, err := s.menuRepository.GetDishIngredients(ctx, dishID)
	if err != nil {
		return false, err
	}

	for _, ing := range ingredients {
		product, err := s.inventoryRepository.GetProductByID(ctx, ing.ProductID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		if product.Quantity < ing.Quantity {
			return false, nil
		}
	}
	return true, nil
}

func (s *menuService) IsOrderable(ctx context.Context, dishID string) (bool, error) {
	dish, err := s.menuRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrDishNotFound
		}
		return false, err
	}
	if !dish.IsAvailable {
		return false, nil
	}
	return s.IsFulfillable(ctx, dishID)
}

func (s *menuService) toDishResponse(ctx context.Context, dish *entities.Dish) (*domain.DishResponse, error) {
	fulfillable, err := s.IsFulfillable(ctx, dish.ID.String())
	if err != nil {
		return nil, err
	}

	ingredients, err := s.IngredientsFor(ctx, dish.ID.String())
	if err != nil {
		return nil, err
	}
	dishAllergies, err := s.menuRepository.GetDishAllergies(ctx, dish.ID.String())
	if err != nil {
		return nil, err
	}
	allergyIDs := make([]string, 0, len(dishAllergies))
	for _, da := range dishAllergies {
		allergyIDs = append(allergyIDs, da.AllergyID.String())
	}

	resp := &domain.DishResponse{
		ID:          dish.ID.String(),
		Name:        dish.Name,
		Price:       dish.Price,
		CategoryID:  dish.CategoryID.String(),
		DayOfWeek:   dish.DayOfWeek,
		IsAvailable: dish.IsAvailable,
		IsOrderable: dish.IsAvailable && fulfillable,
		ImageURL:    dish.ImageURL,
		AllergyIDs:  allergyIDs,
	}
	for _, ing := range ingredients {
		resp.Ingredients = append(resp.Ingredients, *ing)
	}
	if dish.Category != nil {
		resp.Category = dish.Category.Name
	}
	return resp, nil
}
