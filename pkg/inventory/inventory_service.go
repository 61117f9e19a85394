package inventory

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest) (*domain.ProductResponse, error)
		GetProducts(ctx context.Context) ([]*domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, productID string, req domain.UpdateProductRequest) error
		Availability(ctx context.Context, productID string, required float64) (bool, error)
		Consume(ctx context.Context, productID string, qty float64) error
		Replenish(ctx context.Context, productID string, qty float64) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
	}
}

func (s *inventoryService) AddProduct(ctx context.Context, req domain.AddProductRequest) (*domain.ProductResponse, error) {
	if req.Quantity < 0 {
		return nil, domain.ErrNegativeQuantity
	}

	product := &entities.Product{
		ID:       uuid.New(),
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Price:    req.Price,
	}

	if err := s.inventoryRepository.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

func (s *inventoryService) GetProducts(ctx context.Context) ([]*domain.ProductResponse, error) {
	products, err := s.inventoryRepository.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, productID string, req domain.UpdateProductRequest) error {
	product, err := s.inventoryRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrNegativeQuantity
		}
		product.Quantity = *req.Quantity
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	return s.inventoryRepository.UpdateProduct(ctx, product)
}

func (s *inventoryService) Availability(ctx context.Context, productID string, required float64) (bool, error) {
	product, err := s.inventoryRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return product.Quantity >= required, nil
}

func (s *inventoryService) Consume(ctx context.Context, productID string, qty float64) error {
	return s.inventoryRepository.ConsumeQuantity(ctx, productID, qty)
}

func (s *inventoryService) Replenish(ctx context.Context, productID string, qty float64) error {
	if qty < 0 {
		return domain.ErrNegativeQuantity
	}
	return s.inventoryRepository.AddQuantity(ctx, productID, qty)
}

func toProductResponse(p *entities.Product) *domain.ProductResponse {
	return &domain.ProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Quantity: p.Quantity,
		Unit:     p.Unit,
		Price:    p.Price,
	}
}
