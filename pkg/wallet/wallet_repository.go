package wallet

import (
	"School-Canteen-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	WalletRepository interface {
		GetBalance(ctx context.Context, userID string) (float64, error)
		AddBalance(ctx context.Context, userID string, amount float64) error
		SubtractBalance(ctx context.Context, userID string, amount float64) (bool, error)
		RevertPayment(ctx context.Context, userID string, amount float64, paymentID string) error
		CreatePayment(ctx context.Context, payment *entities.Payment) error
		GetUserPayments(ctx context.Context, userID string) ([]*entities.Payment, error)
	}

	walletRepository struct {
		db *gorm.DB
	}
)

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{
		db: db,
	}
}

func (r *walletRepository) GetBalance(ctx context.Context, userID string) (float64, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Select("balance").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return 0, err
	}
	return user.Balance, nil
}

func (r *walletRepository) AddBalance(ctx context.Context, userID string, amount float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

// SubtractBalance debits in a single conditional statement; the guard and
// the mutation cannot be interleaved by a concurrent request.
func (r *walletRepository) SubtractBalance(ctx context.Context, userID string, amount float64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RevertPayment restores the amount and removes the charge row together;
// a reverted charge never shows up in ledgers or reports.
func (r *walletRepository) RevertPayment(ctx context.Context, userID string, amount float64, paymentID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.User{}).
			Where("id = ?", userID).
			Update("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", paymentID).Delete(&entities.Payment{}).Error
	})
}

func (r *walletRepository) CreatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *walletRepository) GetUserPayments(ctx context.Context, userID string) ([]*entities.Payment, error) {
	var payments []*entities.Payment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
