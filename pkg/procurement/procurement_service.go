package procurement

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/pkg/inventory"
	"School-Canteen-Backend/pkg/notification"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProcurementService interface {
		Submit(ctx context.Context, req domain.SubmitRequestRequest, userID string) (*domain.PurchaseRequestResponse, error)
		Approve(ctx context.Context, requestID string) error
		Reject(ctx context.Context, requestID string) error
		Pending(ctx context.Context) ([]*domain.PurchaseRequestResponse, error)
		ByUser(ctx context.Context, userID string) ([]*domain.PurchaseRequestResponse, error)
		All(ctx context.Context) ([]*domain.PurchaseRequestResponse, error)
	}

	procurementService struct {
		procurementRepository ProcurementRepository
		inventoryService      inventory.InventoryService
		inventoryRepository   inventory.InventoryRepository
		notificationService   notification.NotificationService
	}
)

func NewProcurementService(
	procurementRepository ProcurementRepository,
	inventoryService inventory.InventoryService,
	inventoryRepository inventory.InventoryRepository,
	notificationService notification.NotificationService,
) ProcurementService {
	return &procurementService{
		procurementRepository: procurementRepository,
		inventoryService:      inventoryService,
		inventoryRepository:   inventoryRepository,
		notificationService:   notificationService,
	}
}

func (s *procurementService) Submit(ctx context.Context, req domain.SubmitRequestRequest, userID string) (*domain.PurchaseRequestResponse, error) {
	productUUID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	product, err := s.inventoryRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	request := &entities.PurchaseRequest{
		ID:        uuid.New(),
		ProductID: productUUID,
		Quantity:  req.Quantity,
		Status:    domain.RequestStatusPending,
		CreatedBy: userUUID,
	}
	if err := s.procurementRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.notificationService.NotifyRole(ctx, domain.RoleAdmin,
		fmt.Sprintf("New purchase request: %.2f %s of %s", req.Quantity, product.Unit, product.Name))

	request.Product = product
	return toRequestResponse(request), nil
}

// Approve settles the request, snapshots the product price for expense
// reporting and replenishes stock. Replenishment happens at most once
// because the settle statement only matches pending rows.
func (s *procurementService) Approve(ctx context.Context, requestID string) error {
	request, err := s.procurementRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	product, err := s.inventoryRepository.GetProductByID(ctx, request.ProductID.String())
	if err != nil {
		return err
	}

	settled, err := s.procurementRepository.SettleRequest(ctx, requestID, domain.RequestStatusApproved, product.Price)
	if err != nil {
		return err
	}
	if !settled {
		return domain.ErrRequestNotPending
	}

	if err := s.inventoryService.Replenish(ctx, request.ProductID.String(), request.Quantity); err != nil {
		return err
	}

	s.notificationService.Notify(ctx, request.CreatedBy.String(),
		fmt.Sprintf("Purchase request for %s approved", product.Name))
	return nil
}

func (s *procurementService) Reject(ctx context.Context, requestID string) error {
	request, err := s.procurementRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	settled, err := s.procurementRepository.SettleRequest(ctx, requestID, domain.RequestStatusRejected, 0)
	if err != nil {
		return err
	}
	if !settled {
		return domain.ErrRequestNotPending
	}

	productName := request.ProductID.String()
	if request.Product != nil {
		productName = request.Product.Name
	}
	s.notificationService.Notify(ctx, request.CreatedBy.String(),
		fmt.Sprintf("Purchase request for %s rejected", productName))
	return nil
}

func (s *procurementService) Pending(ctx context.Context) ([]*domain.PurchaseRequestResponse, error) {
	requests, err := s.procurementRepository.GetPendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func (s *procurementService) ByUser(ctx context.Context, userID string) ([]*domain.PurchaseRequestResponse, error) {
	requests, err := s.procurementRepository.GetRequestsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func (s *procurementService) All(ctx context.Context) ([]*domain.PurchaseRequestResponse, error) {
	requests, err := s.procurementRepository.GetAllRequests(ctx)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func toRequestResponse(r *entities.PurchaseRequest) *domain.PurchaseRequestResponse {
	resp := &domain.PurchaseRequestResponse{
		ID:        r.ID.String(),
		ProductID: r.ProductID.String(),
		Quantity:  r.Quantity,
		Status:    r.Status,
		CreatedBy: r.CreatedBy.String(),
		CreatedAt: r.CreatedAt,
	}
	if r.Product != nil {
		resp.ProductName = r.Product.Name
		resp.Unit = r.Product.Unit
	}
	return resp
}

func toRequestResponses(requests []*entities.PurchaseRequest) []*domain.PurchaseRequestResponse {
	result := make([]*domain.PurchaseRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, toRequestResponse(r))
	}
	return result
}
