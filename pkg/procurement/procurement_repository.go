package procurement

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProcurementRepository interface {
		CreateRequest(ctx context.Context, request *entities.PurchaseRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.PurchaseRequest, error)
		GetPendingRequests(ctx context.Context) ([]*entities.PurchaseRequest, error)
		GetRequestsByUser(ctx context.Context, userID string) ([]*entities.PurchaseRequest, error)
		GetAllRequests(ctx context.Context) ([]*entities.PurchaseRequest, error)
		SettleRequest(ctx context.Context, id string, status string, approvedPrice float64) (bool, error)
	}

	procurementRepository struct {
		db *gorm.DB
	}
)

func NewProcurementRepository(db *gorm.DB) ProcurementRepository {
	return &procurementRepository{
		db: db,
	}
}

func (r *procurementRepository) CreateRequest(ctx context.Context, request *entities.PurchaseRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *procurementRepository) GetRequestByID(ctx context.Context, id string) (*entities.PurchaseRequest, error) {
	var request entities.PurchaseRequest
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *procurementRepository) GetPendingRequests(ctx context.Context) ([]*entities.PurchaseRequest, error) {
	var requests []*entities.PurchaseRequest
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("status = ?", domain.RequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *procurementRepository) GetRequestsByUser(ctx context.Context, userID string) ([]*entities.PurchaseRequest, error) {
	var requests []*entities.PurchaseRequest
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *procurementRepository) GetAllRequests(ctx context.Context) ([]*entities.PurchaseRequest, error) {
	var requests []*entities.PurchaseRequest
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// SettleRequest moves a pending request to its terminal status. The status
// guard is part of the statement, so a request can be settled exactly once.
func (r *procurementRepository) SettleRequest(ctx context.Context, id string, status string, approvedPrice float64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.PurchaseRequest{}).
		Where("id = ? AND status = ?", id, domain.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":         status,
			"approved_price": approvedPrice,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
