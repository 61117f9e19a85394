package inventory

import (
	"School-Canteen-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetAllProducts(ctx context.Context) ([]*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		AddQuantity(ctx context.Context, id string, qty float64) error
		ConsumeQuantity(ctx context.Context, id string, qty float64) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

func (r *inventoryRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *inventoryRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *inventoryRepository) GetAllProducts(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *inventoryRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *inventoryRepository) AddQuantity(ctx context.Context, id string, qty float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("ROUND((quantity + ?)::numeric, 2)", qty)).Error
}

// ConsumeQuantity decreases stock in a single statement, floored at zero.
// The caller is responsible for the availability check when a shortage must
// be an error rather than a clamp.
func (r *inventoryRepository) ConsumeQuantity(ctx context.Context, id string, qty float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("GREATEST(ROUND((quantity - ?)::numeric, 2), 0)", qty)).Error
}
