package order

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrderWithLines(ctx context.Context, order *entities.Order, lines []*entities.OrderLine) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrderLineByID(ctx context.Context, id string) (*entities.OrderLine, error)
		GetUserOrders(ctx context.Context, userID string) ([]*entities.Order, error)
		GetOrdersToPrepare(ctx context.Context, day time.Time) ([]*entities.Order, error)
		GetReceivedOrders(ctx context.Context, day time.Time) ([]*entities.Order, error)
		CountSubscriptionOrders(ctx context.Context, userID string, mealType string, day time.Time) (int64, error)
		CookLine(ctx context.Context, lineID string, needs []*domain.DishIngredientResponse) error
		MarkOrderPrepared(ctx context.Context, orderID string) error
		MarkOrderReceived(ctx context.Context, orderID string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrderWithLines writes the order and all its lines in one
// transaction; a half-created order is never visible.
func (r *orderRepository) CreateOrderWithLines(ctx context.Context, order *entities.Order, lines []*entities.OrderLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, line := range lines {
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Dish").
		Preload("User").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrderLineByID(ctx context.Context, id string) (*entities.OrderLine, error) {
	var line entities.OrderLine
	if err := r.db.WithContext(ctx).
		Preload("Dish").
		Where("id = ?", id).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *orderRepository) GetUserOrders(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Dish").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrdersToPrepare(ctx context.Context, day time.Time) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Dish").
		Preload("User").
		Where("date = ? AND is_prepared = ?", day.Format("2006-01-02"), false).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetReceivedOrders(ctx context.Context, day time.Time) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Dish").
		Preload("User").
		Where("date = ? AND is_received = ?", day.Format("2006-01-02"), true).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CountSubscriptionOrders(ctx context.Context, userID string, mealType string, day time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("user_id = ? AND meal_type = ? AND date = ? AND is_subscription = ?",
			userID, mealType, day.Format("2006-01-02"), true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CookLine depletes every recipe entry and flips the line cooked in one
// transaction. Each depletion is a conditional update guarded by the
// remaining quantity, so a shortage on any ingredient rolls the whole
// thing back and nothing is consumed.
func (r *orderRepository) CookLine(ctx context.Context, lineID string, needs []*domain.DishIngredientResponse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, need := range needs {
			result := tx.Model(&entities.Product{}).
				Where("id = ? AND quantity >= ?", need.ProductID, need.Quantity).
				Update("quantity", gorm.Expr("ROUND((quantity - ?)::numeric, 2)", need.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrInsufficientStock
			}
		}
		return tx.Model(&entities.OrderLine{}).
			Where("id = ?", lineID).
			Update("is_cooked", true).Error
	})
}

func (r *orderRepository) MarkOrderPrepared(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", orderID).
		Update("is_prepared", true).Error
}

func (r *orderRepository) MarkOrderReceived(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", orderID).
		Update("is_received", true).Error
}
