package report

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		SumPaymentsByType(ctx context.Context, paymentType string) (float64, error)
		SumApprovedExpenses(ctx context.Context) (float64, error)
		CountOrders(ctx context.Context) (int64, error)
		CountOrdersOn(ctx context.Context, day time.Time) (int64, error)
		CountReceivedOrdersOn(ctx context.Context, day time.Time) (int64, error)
		ClassAttendanceOn(ctx context.Context, day time.Time) ([]*domain.ClassAttendanceResponse, error)
		DishStatsOn(ctx context.Context, day time.Time) ([]*domain.DishStatsResponse, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{
		db: db,
	}
}

func (r *reportRepository) SumPaymentsByType(ctx context.Context, paymentType string) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).
		Model(&entities.Payment{}).
		Where("payment_type = ?", paymentType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// SumApprovedExpenses totals approved purchase requests at the price each one
// was approved with, not the product's current price.
func (r *reportRepository) SumApprovedExpenses(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).
		Model(&entities.PurchaseRequest{}).
		Where("status = ?", domain.RequestStatusApproved).
		Select("COALESCE(SUM(quantity * approved_price), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *reportRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) CountOrdersOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("date = ?", day.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) CountReceivedOrdersOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("date = ? AND is_received = ?", day.Format("2006-01-02"), true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) ClassAttendanceOn(ctx context.Context, day time.Time) ([]*domain.ClassAttendanceResponse, error) {
	var rows []*domain.ClassAttendanceResponse
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Select(`users.class_name AS class_name,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE orders.meal_type = ?) AS breakfast,
			COUNT(*) FILTER (WHERE orders.meal_type = ?) AS lunch`,
			domain.MealTypeBreakfast, domain.MealTypeLunch).
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.date = ? AND orders.is_received = ?", day.Format("2006-01-02"), true).
		Group("users.class_name").
		Order("users.class_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) DishStatsOn(ctx context.Context, day time.Time) ([]*domain.DishStatsResponse, error) {
	var rows []*domain.DishStatsResponse
	if err := r.db.WithContext(ctx).
		Model(&entities.OrderLine{}).
		Select("dishes.name AS dish_name, COUNT(*) AS count").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Joins("JOIN dishes ON dishes.id = order_lines.dish_id").
		Where("orders.date = ? AND orders.is_received = ?", day.Format("2006-01-02"), true).
		Group("dishes.name").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
