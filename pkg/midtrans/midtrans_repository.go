package midtrans

import (
	"School-Canteen-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MidtransRepository interface {
		CreateTopUp(ctx context.Context, topUp *entities.TopUp) error
		GetTopUpByOrderRef(ctx context.Context, orderRef string) (*entities.TopUp, error)
		SettleTopUp(ctx context.Context, orderRef string, status string) (bool, error)
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{
		db: db,
	}
}

func (r *midtransRepository) CreateTopUp(ctx context.Context, topUp *entities.TopUp) error {
	return r.db.WithContext(ctx).Create(topUp).Error
}

func (r *midtransRepository) GetTopUpByOrderRef(ctx context.Context, orderRef string) (*entities.TopUp, error) {
	var topUp entities.TopUp
	if err := r.db.WithContext(ctx).
		Where("order_ref = ?", orderRef).
		First(&topUp).Error; err != nil {
		return nil, err
	}
	return &topUp, nil
}

// SettleTopUp moves a pending invoice to its final status. The pending guard
// makes the webhook idempotent; a replayed notification reports false.
func (r *midtransRepository) SettleTopUp(ctx context.Context, orderRef string, status string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.TopUp{}).
		Where("order_ref = ? AND status = ?", orderRef, "pending").
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
