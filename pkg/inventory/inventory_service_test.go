package inventory

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInventoryRepo struct {
	products map[string]*entities.Product
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{products: make(map[string]*entities.Product)}
}

func (f *fakeInventoryRepo) CreateProduct(_ context.Context, product *entities.Product) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *fakeInventoryRepo) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (f *fakeInventoryRepo) GetAllProducts(context.Context) ([]*entities.Product, error) {
	var result []*entities.Product
	for _, p := range f.products {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeInventoryRepo) UpdateProduct(_ context.Context, product *entities.Product) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *fakeInventoryRepo) AddQuantity(_ context.Context, id string, qty float64) error {
	product, ok := f.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	product.Quantity += qty
	return nil
}

func (f *fakeInventoryRepo) ConsumeQuantity(_ context.Context, id string, qty float64) error {
	product, ok := f.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	product.Quantity -= qty
	if product.Quantity < 0 {
		product.Quantity = 0
	}
	return nil
}

func TestAddProductValidation(t *testing.T) {
	service := NewInventoryService(newFakeInventoryRepo())

	resp, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Name:     "flour",
		Quantity: 2.5,
		Unit:     "kg",
		Price:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, "flour", resp.Name)
	assert.Equal(t, 2.5, resp.Quantity)

	_, err = service.AddProduct(context.Background(), domain.AddProductRequest{
		Name:     "flour",
		Quantity: -1,
		Unit:     "kg",
	})
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

func TestAvailability(t *testing.T) {
	repo := newFakeInventoryRepo()
	service := NewInventoryService(repo)

	product := &entities.Product{ID: uuid.New(), Name: "milk", Quantity: 0.5, Unit: "l"}
	repo.products[product.ID.String()] = product

	ok, err := service.Availability(context.Background(), product.ID.String(), 0.5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Availability(context.Background(), product.ID.String(), 0.6)
	require.NoError(t, err)
	assert.False(t, ok)

	// unknown product reports unavailable, not an error
	ok, err = service.Availability(context.Background(), uuid.New().String(), 0.1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateProductPartial(t *testing.T) {
	repo := newFakeInventoryRepo()
	service := NewInventoryService(repo)

	product := &entities.Product{ID: uuid.New(), Name: "eggs", Quantity: 30, Unit: "pcs", Price: 0.5}
	repo.products[product.ID.String()] = product

	newPrice := 0.75
	require.NoError(t, service.UpdateProduct(context.Background(), product.ID.String(), domain.UpdateProductRequest{
		Price: &newPrice,
	}))
	assert.Equal(t, 0.75, product.Price)
	assert.Equal(t, 30.0, product.Quantity)

	negative := -3.0
	err := service.UpdateProduct(context.Background(), product.ID.String(), domain.UpdateProductRequest{
		Quantity: &negative,
	})
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)

	err = service.UpdateProduct(context.Background(), uuid.New().String(), domain.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReplenishAndConsume(t *testing.T) {
	repo := newFakeInventoryRepo()
	service := NewInventoryService(repo)

	product := &entities.Product{ID: uuid.New(), Name: "rice", Quantity: 1.0, Unit: "kg"}
	repo.products[product.ID.String()] = product

	require.NoError(t, service.Replenish(context.Background(), product.ID.String(), 4.0))
	assert.Equal(t, 5.0, product.Quantity)

	err := service.Replenish(context.Background(), product.ID.String(), -1)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)

	require.NoError(t, service.Consume(context.Background(), product.ID.String(), 2.5))
	assert.Equal(t, 2.5, product.Quantity)
}
