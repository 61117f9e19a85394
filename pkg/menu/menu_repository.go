package menu

import (
	"School-Canteen-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		// Categories
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context, mealType string) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)

		// Dishes
		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetDishesByDay(ctx context.Context, dayOfWeek int, mealType string) ([]*entities.Dish, error)
		GetDishesByMeal(ctx context.Context, mealType string) ([]*entities.Dish, error)
		UpdateAvailabilityByName(ctx context.Context, name string, available bool) error
		UpdateDishImage(ctx context.Context, id string, imageURL string) error
		DeleteDish(ctx context.Context, id string) error

		// Ingredients and allergies
		CreateDishIngredient(ctx context.Context, ingredient *entities.DishIngredient) error
		GetDishIngredients(ctx context.Context, dishID string) ([]*entities.DishIngredient, error)
		CreateDishAllergy(ctx context.Context, dishAllergy *entities.DishAllergy) error
		GetDishAllergies(ctx context.Context, dishID string) ([]*entities.DishAllergy, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{
		db: db,
	}
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuRepository) GetCategories(ctx context.Context, mealType string) ([]*entities.Category, error) {
	var categories []*entities.Category
	query := r.db.WithContext(ctx)
	if mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *menuRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *menuRepository) GetDishesByDay(ctx context.Context, dayOfWeek int, mealType string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Joins("JOIN categories ON categories.id = dishes.category_id").
		Where("dishes.day_of_week = ? AND categories.meal_type = ?", dayOfWeek, mealType).
		Order("dishes.name ASC").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *menuRepository) GetDishesByMeal(ctx context.Context, mealType string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Joins("JOIN categories ON categories.id = dishes.category_id").
		Where("categories.meal_type = ?", mealType).
		Order("dishes.name ASC, dishes.day_of_week ASC").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// UpdateAvailabilityByName flips the flag for the whole dish family, so the
// day-keyed menu and the unique dish list never disagree.
func (r *menuRepository) UpdateAvailabilityByName(ctx context.Context, name string, available bool) error {
	return r.db.WithContext(ctx).
		Model(&entities.Dish{}).
		Where("name = ?", name).
		Update("is_available", available).Error
}

func (r *menuRepository) UpdateDishImage(ctx context.Context, id string, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Dish{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *menuRepository) DeleteDish(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.DishIngredient{}, "dish_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.DishAllergy{}, "dish_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Dish{}, "id = ?", id).Error
	})
}

func (r *menuRepository) CreateDishIngredient(ctx context.Context, ingredient *entities.DishIngredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *menuRepository) GetDishIngredients(ctx context.Context, dishID string) ([]*entities.DishIngredient, error) {
	var ingredients []*entities.DishIngredient
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("dish_id = ?", dishID).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *menuRepository) CreateDishAllergy(ctx context.Context, dishAllergy *entities.DishAllergy) error {
	return r.db.WithContext(ctx).Create(dishAllergy).Error
}

func (r *menuRepository) GetDishAllergies(ctx context.Context, dishID string) ([]*entities.DishAllergy, error) {
	var allergies []*entities.DishAllergy
	if err := r.db.WithContext(ctx).
		Preload("Allergy").
		Where("dish_id = ?", dishID).
		Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}
