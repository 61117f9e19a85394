package subscription

import (
	"School-Canteen-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		GetSubscription(ctx context.Context, userID string, mealType string) (*entities.Subscription, error)
		GetUserSubscriptions(ctx context.Context, userID string) ([]*entities.Subscription, error)
		CreateSubscription(ctx context.Context, subscription *entities.Subscription) error
		AddMeals(ctx context.Context, userID string, mealType string, count int) (bool, error)
		UseMeal(ctx context.Context, userID string, mealType string) (bool, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

func (r *subscriptionRepository) GetSubscription(ctx context.Context, userID string, mealType string) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND meal_type = ?", userID, mealType).
		First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) GetUserSubscriptions(ctx context.Context, userID string) ([]*entities.Subscription, error) {
	var subscriptions []*entities.Subscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("meal_type ASC").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) AddMeals(ctx context.Context, userID string, mealType string, count int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ? AND meal_type = ?", userID, mealType).
		Update("meals_left", gorm.Expr("meals_left + ?", count))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UseMeal decrements one credit with the positivity guard in the same
// statement, so two concurrent orders cannot both spend the last credit.
func (r *subscriptionRepository) UseMeal(ctx context.Context, userID string, mealType string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ? AND meal_type = ? AND meals_left > 0", userID, mealType).
		Update("meals_left", gorm.Expr("meals_left - 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
