package procurement

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/pkg/inventory"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProcurementRepo struct {
	requests map[string]*entities.PurchaseRequest
}

func newFakeProcurementRepo() *fakeProcurementRepo {
	return &fakeProcurementRepo{requests: make(map[string]*entities.PurchaseRequest)}
}

func (f *fakeProcurementRepo) CreateRequest(_ context.Context, request *entities.PurchaseRequest) error {
	f.requests[request.ID.String()] = request
	return nil
}

func (f *fakeProcurementRepo) GetRequestByID(_ context.Context, id string) (*entities.PurchaseRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (f *fakeProcurementRepo) GetPendingRequests(context.Context) ([]*entities.PurchaseRequest, error) {
	var result []*entities.PurchaseRequest
	for _, r := range f.requests {
		if r.Status == domain.RequestStatusPending {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeProcurementRepo) GetRequestsByUser(_ context.Context, userID string) ([]*entities.PurchaseRequest, error) {
	var result []*entities.PurchaseRequest
	for _, r := range f.requests {
		if r.CreatedBy.String() == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeProcurementRepo) GetAllRequests(context.Context) ([]*entities.PurchaseRequest, error) {
	var result []*entities.PurchaseRequest
	for _, r := range f.requests {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeProcurementRepo) SettleRequest(_ context.Context, id string, status string, approvedPrice float64) (bool, error) {
	request, ok := f.requests[id]
	if !ok || request.Status != domain.RequestStatusPending {
		return false, nil
	}
	request.Status = status
	request.ApprovedPrice = approvedPrice
	return true, nil
}

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
	return nil, nil
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

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, string, string)     {}
func (noopNotifier) NotifyRole(context.Context, string, string) {}
func (noopNotifier) List(context.Context, string) ([]*domain.NotificationResponse, error) {
	return nil, nil
}
func (noopNotifier) UnreadCount(context.Context, string) (int64, error) { return 0, nil }

type procurementFixture struct {
	repo          *fakeProcurementRepo
	inventoryRepo *fakeInventoryRepo
	service       ProcurementService
}

func newProcurementFixture() *procurementFixture {
	f := &procurementFixture{
		repo:          newFakeProcurementRepo(),
		inventoryRepo: newFakeInventoryRepo(),
	}
	inventoryService := inventory.NewInventoryService(f.inventoryRepo)
	f.service = NewProcurementService(f.repo, inventoryService, f.inventoryRepo, noopNotifier{})
	return f
}

func (f *procurementFixture) addProduct(qty, price float64) *entities.Product {
	product := &entities.Product{
		ID:       uuid.New(),
		Name:     "rice",
		Quantity: qty,
		Unit:     "kg",
		Price:    price,
	}
	f.inventoryRepo.products[product.ID.String()] = product
	return product
}

func TestSubmitAndApproveReplenishesStock(t *testing.T) {
	f := newProcurementFixture()
	product := f.addProduct(2.0, 12.5)
	userID := uuid.New().String()

	resp, err := f.service.Submit(context.Background(), domain.SubmitRequestRequest{
		ProductID: product.ID.String(),
		Quantity:  5.0,
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, resp.Status)
	assert.Equal(t, "rice", resp.ProductName)

	require.NoError(t, f.service.Approve(context.Background(), resp.ID))

	assert.Equal(t, 7.0, product.Quantity)
	request := f.repo.requests[resp.ID]
	assert.Equal(t, domain.RequestStatusApproved, request.Status)
	// price captured at approval time for the expense report
	assert.Equal(t, 12.5, request.ApprovedPrice)
}

func TestApprovedPriceSurvivesLaterPriceEdit(t *testing.T) {
	f := newProcurementFixture()
	product := f.addProduct(0, 10.0)
	userID := uuid.New().String()

	resp, err := f.service.Submit(context.Background(), domain.SubmitRequestRequest{
		ProductID: product.ID.String(),
		Quantity:  3.0,
	}, userID)
	require.NoError(t, err)
	require.NoError(t, f.service.Approve(context.Background(), resp.ID))

	product.Price = 99.0

	assert.Equal(t, 10.0, f.repo.requests[resp.ID].ApprovedPrice)
}

func TestSettleExactlyOnce(t *testing.T) {
	f := newProcurementFixture()
	product := f.addProduct(1.0, 5.0)
	userID := uuid.New().String()

	resp, err := f.service.Submit(context.Background(), domain.SubmitRequestRequest{
		ProductID: product.ID.String(),
		Quantity:  4.0,
	}, userID)
	require.NoError(t, err)

	require.NoError(t, f.service.Approve(context.Background(), resp.ID))
	assert.Equal(t, 5.0, product.Quantity)

	// a second approval must not replenish again
	err = f.service.Approve(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
	assert.Equal(t, 5.0, product.Quantity)

	err = f.service.Reject(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
}

func TestRejectLeavesStockAlone(t *testing.T) {
	f := newProcurementFixture()
	product := f.addProduct(1.0, 5.0)
	userID := uuid.New().String()

	resp, err := f.service.Submit(context.Background(), domain.SubmitRequestRequest{
		ProductID: product.ID.String(),
		Quantity:  4.0,
	}, userID)
	require.NoError(t, err)

	require.NoError(t, f.service.Reject(context.Background(), resp.ID))
	assert.Equal(t, 1.0, product.Quantity)
	assert.Equal(t, domain.RequestStatusRejected, f.repo.requests[resp.ID].Status)

	err = f.service.Approve(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
}

func TestSubmitUnknownProduct(t *testing.T) {
	f := newProcurementFixture()
	_, err := f.service.Submit(context.Background(), domain.SubmitRequestRequest{
		ProductID: uuid.New().String(),
		Quantity:  1.0,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestApproveUnknownRequest(t *testing.T) {
	f := newProcurementFixture()
	err := f.service.Approve(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
