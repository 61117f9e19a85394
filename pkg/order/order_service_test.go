package order

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders     map[string]*entities.Order
	lines      map[string]*entities.OrderLine
	stock      map[string]float64
	failCreate bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entities.Order),
		lines:  make(map[string]*entities.OrderLine),
		stock:  make(map[string]float64),
	}
}

func (f *fakeOrderRepo) CreateOrderWithLines(_ context.Context, order *entities.Order, lines []*entities.OrderLine) error {
	if f.failCreate {
		return errors.New("create failed")
	}
	order.Lines = lines
	f.orders[order.ID.String()] = order
	for _, line := range lines {
		f.lines[line.ID.String()] = line
	}
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) GetOrderLineByID(_ context.Context, id string) (*entities.OrderLine, error) {
	line, ok := f.lines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return line, nil
}

func (f *fakeOrderRepo) GetUserOrders(_ context.Context, userID string) ([]*entities.Order, error) {
	var result []*entities.Order
	for _, o := range f.orders {
		if o.UserID.String() == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) GetOrdersToPrepare(_ context.Context, day time.Time) ([]*entities.Order, error) {
	var result []*entities.Order
	for _, o := range f.orders {
		if o.Date.Equal(day) && !o.IsPrepared {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) GetReceivedOrders(_ context.Context, day time.Time) ([]*entities.Order, error) {
	var result []*entities.Order
	for _, o := range f.orders {
		if o.Date.Equal(day) && o.IsReceived {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) CountSubscriptionOrders(_ context.Context, userID string, mealType string, day time.Time) (int64, error) {
	var count int64
	for _, o := range f.orders {
		if o.UserID.String() == userID && o.MealType == mealType && o.IsSubscription && o.Date.Equal(day) {
			count++
		}
	}
	return count, nil
}

// CookLine mirrors the all-or-nothing semantics of the real repository:
// every depletion and the cooked flag land together, or none do.
func (f *fakeOrderRepo) CookLine(_ context.Context, lineID string, needs []*domain.DishIngredientResponse) error {
	line, ok := f.lines[lineID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, need := range needs {
		if f.stock[need.ProductID] < need.Quantity {
			return domain.ErrInsufficientStock
		}
	}
	for _, need := range needs {
		f.stock[need.ProductID] -= need.Quantity
	}
	line.IsCooked = true
	return nil
}

func (f *fakeOrderRepo) MarkOrderPrepared(_ context.Context, orderID string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.IsPrepared = true
	return nil
}

func (f *fakeOrderRepo) MarkOrderReceived(_ context.Context, orderID string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.IsReceived = true
	return nil
}

type fakeMenuService struct {
	dishes        map[string]*domain.DishResponse
	ingredients   map[string][]*domain.DishIngredientResponse
	unfulfillable map[string]bool
}

func newFakeMenuService() *fakeMenuService {
	return &fakeMenuService{
		dishes:        make(map[string]*domain.DishResponse),
		ingredients:   make(map[string][]*domain.DishIngredientResponse),
		unfulfillable: make(map[string]bool),
	}
}

func (f *fakeMenuService) GetMenuByDay(context.Context, int, string) ([]*domain.MenuCategoryResponse, error) {
	return nil, nil
}

func (f *fakeMenuService) GetUniqueDishes(context.Context, string) ([]*domain.DishResponse, error) {
	return nil, nil
}

func (f *fakeMenuService) GetDish(_ context.Context, dishID string) (*domain.DishResponse, error) {
	dish, ok := f.dishes[dishID]
	if !ok {
		return nil, domain.ErrDishNotFound
	}
	return dish, nil
}

func (f *fakeMenuService) GetCategories(context.Context, string) ([]*entities.Category, error) {
	return nil, nil
}

func (f *fakeMenuService) CreateDish(context.Context, domain.CreateDishRequest) (*domain.DishResponse, error) {
	return nil, nil
}

func (f *fakeMenuService) DeleteDish(context.Context, string) error { return nil }

func (f *fakeMenuService) ToggleAvailability(context.Context, string) error { return nil }

func (f *fakeMenuService) UploadDishImage(context.Context, domain.UploadDishImageRequest) (string, error) {
	return "", nil
}

func (f *fakeMenuService) IngredientsFor(_ context.Context, dishID string) ([]*domain.DishIngredientResponse, error) {
	return f.ingredients[dishID], nil
}

func (f *fakeMenuService) IsFulfillable(_ context.Context, dishID string) (bool, error) {
	return !f.unfulfillable[dishID], nil
}

func (f *fakeMenuService) IsOrderable(_ context.Context, dishID string) (bool, error) {
	dish, ok := f.dishes[dishID]
	if !ok {
		return false, domain.ErrDishNotFound
	}
	return dish.IsOrderable, nil
}

type fakeWalletService struct {
	balances map[string]float64
	payments map[string]string // payment id -> type
}

func newFakeWalletService() *fakeWalletService {
	return &fakeWalletService{
		balances: make(map[string]float64),
		payments: make(map[string]string),
	}
}

func (f *fakeWalletService) Balance(_ context.Context, userID string) (*domain.BalanceResponse, error) {
	return &domain.BalanceResponse{Balance: f.balances[userID]}, nil
}

func (f *fakeWalletService) Credit(_ context.Context, userID string, amount float64, paymentType string) error {
	f.balances[userID] += amount
	f.payments[uuid.New().String()] = paymentType
	return nil
}

func (f *fakeWalletService) Debit(_ context.Context, userID string, amount float64, paymentType string) (string, error) {
	if f.balances[userID] < amount {
		return "", domain.ErrInsufficientFunds
	}
	f.balances[userID] -= amount
	id := uuid.New().String()
	f.payments[id] = paymentType
	return id, nil
}

func (f *fakeWalletService) Refund(_ context.Context, userID string, amount float64, paymentID string) error {
	f.balances[userID] += amount
	delete(f.payments, paymentID)
	return nil
}

func (f *fakeWalletService) paymentTypes() []string {
	var types []string
	for _, t := range f.payments {
		types = append(types, t)
	}
	return types
}

func (f *fakeWalletService) Payments(context.Context, string) ([]*domain.PaymentResponse, error) {
	return nil, nil
}

type fakeSubscriptionService struct {
	credits map[string]int
}

func newFakeSubscriptionService() *fakeSubscriptionService {
	return &fakeSubscriptionService{credits: make(map[string]int)}
}

func (f *fakeSubscriptionService) key(userID, mealType string) string {
	return userID + "/" + mealType
}

func (f *fakeSubscriptionService) Credits(_ context.Context, userID string, mealType string) (int, error) {
	return f.credits[f.key(userID, mealType)], nil
}

func (f *fakeSubscriptionService) Grant(_ context.Context, userID string, mealType string, count int) error {
	f.credits[f.key(userID, mealType)] += count
	return nil
}

func (f *fakeSubscriptionService) ConsumeOne(_ context.Context, userID string, mealType string) (bool, error) {
	if f.credits[f.key(userID, mealType)] <= 0 {
		return false, nil
	}
	f.credits[f.key(userID, mealType)]--
	return true, nil
}

func (f *fakeSubscriptionService) Buy(context.Context, domain.BuySubscriptionRequest, string) error {
	return nil
}

func (f *fakeSubscriptionService) List(context.Context, string) ([]*domain.SubscriptionResponse, error) {
	return nil, nil
}

type fakeNotificationService struct {
	texts []string
}

func (f *fakeNotificationService) Notify(_ context.Context, _ string, text string) {
	f.texts = append(f.texts, text)
}

func (f *fakeNotificationService) NotifyRole(_ context.Context, _ string, text string) {
	f.texts = append(f.texts, text)
}

func (f *fakeNotificationService) List(context.Context, string) ([]*domain.NotificationResponse, error) {
	return nil, nil
}

func (f *fakeNotificationService) UnreadCount(context.Context, string) (int64, error) {
	return 0, nil
}

type orderFixture struct {
	repo          *fakeOrderRepo
	menu          *fakeMenuService
	wallet        *fakeWalletService
	subscriptions *fakeSubscriptionService
	notifications *fakeNotificationService
	service       OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		repo:          newFakeOrderRepo(),
		menu:          newFakeMenuService(),
		wallet:        newFakeWalletService(),
		subscriptions: newFakeSubscriptionService(),
		notifications: &fakeNotificationService{},
	}
	f.service = NewOrderService(f.repo, f.menu, f.wallet, f.subscriptions, f.notifications)
	return f
}

func (f *orderFixture) addDish(price float64, orderable bool) string {
	id := uuid.New().String()
	f.menu.dishes[id] = &domain.DishResponse{
		ID:          id,
		Name:        "dish-" + id[:8],
		Price:       price,
		IsAvailable: orderable,
		IsOrderable: orderable,
	}
	return id
}

func TestPlaceOrderWalletPath(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 200

	dishA := f.addDish(80, true)
	dishB := f.addDish(50, true)

	resp, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType: domain.MealTypeLunch,
		DishIDs:  []string{dishA, dishB},
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, 130.0, resp.Total)
	assert.False(t, resp.IsSubscription)
	assert.Equal(t, 70.0, f.wallet.balances[userID])
	assert.Contains(t, f.wallet.paymentTypes(), domain.PaymentTypePurchase)

	order, err := f.repo.GetOrderByID(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Len(t, order.Lines, 2)

	// line prices are snapshots of the dish prices at order time
	prices := []float64{order.Lines[0].Price, order.Lines[1].Price}
	assert.ElementsMatch(t, []float64{80.0, 50.0}, prices)
}

func TestPlaceOrderInsufficientFunds(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 100

	dish := f.addDish(130, true)

	_, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType: domain.MealTypeLunch,
		DishIDs:  []string{dish},
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 100.0, f.wallet.balances[userID])
	assert.Empty(t, f.repo.orders)
}

func TestPlaceOrderUnavailableDish(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 500

	available := f.addDish(50, true)
	unavailable := f.addDish(80, false)

	_, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType: domain.MealTypeBreakfast,
		DishIDs:  []string{available, unavailable},
	}, userID)
	assert.ErrorIs(t, err, domain.ErrUnavailableDish)

	// nothing was charged for the partially valid selection
	assert.Equal(t, 500.0, f.wallet.balances[userID])
	assert.Empty(t, f.repo.orders)
}

func TestPlaceOrderEmptyAndBadMealType(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()

	_, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType: domain.MealTypeLunch,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)

	dish := f.addDish(10, true)
	_, err = f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType: "dinner",
		DishIDs:  []string{dish},
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidMealType)
}

func TestPlaceOrderSubscription(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	dish := f.addDish(80, true)

	f.subscriptions.credits[userID+"/"+domain.MealTypeBreakfast] = 2

	resp, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType:        domain.MealTypeBreakfast,
		DishIDs:         []string{dish},
		UseSubscription: true,
	}, userID)
	require.NoError(t, err)
	assert.True(t, resp.IsSubscription)
	assert.Equal(t, 1, f.subscriptions.credits[userID+"/"+domain.MealTypeBreakfast])

	// the wallet is never touched on the subscription path
	assert.Empty(t, f.wallet.payments)

	// same meal, same day: refused even though a credit remains
	_, err = f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType:        domain.MealTypeBreakfast,
		DishIDs:         []string{dish},
		UseSubscription: true,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrSubscriptionAlreadyUsed)
	assert.Equal(t, 1, f.subscriptions.credits[userID+"/"+domain.MealTypeBreakfast])
}

func TestPlaceOrderSubscriptionNoCredit(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	dish := f.addDish(80, true)

	_, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType:        domain.MealTypeLunch,
		DishIDs:         []string{dish},
		UseSubscription: true,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrNoSubscriptionCredit)
}

func TestPlaceOrderCompensatesOnCreateFailure(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 200
	f.repo.failCreate = true

	dish := f.addDish(80, true)

	_, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType: domain.MealTypeLunch,
		DishIDs:  []string{dish},
	}, userID)
	require.Error(t, err)
	assert.Equal(t, 200.0, f.wallet.balances[userID])

	// the compensating refund also removes the charge row, so payment
	// history and income reports never see the failed order
	assert.Empty(t, f.wallet.payments)

	// subscription path regrants the consumed credit
	f.subscriptions.credits[userID+"/"+domain.MealTypeLunch] = 1
	_, err = f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType:        domain.MealTypeLunch,
		DishIDs:         []string{dish},
		UseSubscription: true,
	}, userID)
	require.Error(t, err)
	assert.Equal(t, 1, f.subscriptions.credits[userID+"/"+domain.MealTypeLunch])
}

func placeTestOrder(t *testing.T, f *orderFixture, userID string, dishIDs ...string) *entities.Order {
	t.Helper()
	resp, err := f.service.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		MealType: domain.MealTypeLunch,
		DishIDs:  dishIDs,
	}, userID)
	require.NoError(t, err)
	order, err := f.repo.GetOrderByID(context.Background(), resp.OrderID)
	require.NoError(t, err)
	return order
}

func TestCookLineConsumesStock(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 100

	dish := f.addDish(50, true)
	productID := uuid.New().String()
	f.repo.stock[productID] = 1.0
	f.menu.ingredients[dish] = []*domain.DishIngredientResponse{
		{ProductID: productID, Quantity: 0.4},
	}

	order := placeTestOrder(t, f, userID, dish)
	lineID := order.Lines[0].ID.String()

	require.NoError(t, f.service.CookLine(context.Background(), lineID))
	assert.InDelta(t, 0.6, f.repo.stock[productID], 1e-9)
	assert.True(t, order.Lines[0].IsCooked)

	err := f.service.CookLine(context.Background(), lineID)
	assert.ErrorIs(t, err, domain.ErrLineAlreadyCooked)
	assert.InDelta(t, 0.6, f.repo.stock[productID], 1e-9)
}

func TestCookLineInsufficientStock(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 100

	dish := f.addDish(50, true)
	productA := uuid.New().String()
	productB := uuid.New().String()
	f.repo.stock[productA] = 1.0
	f.repo.stock[productB] = 0.05
	f.menu.ingredients[dish] = []*domain.DishIngredientResponse{
		{ProductID: productA, Quantity: 0.4},
		{ProductID: productB, Quantity: 0.1},
	}

	order := placeTestOrder(t, f, userID, dish)
	lineID := order.Lines[0].ID.String()

	err := f.service.CookLine(context.Background(), lineID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// no partial consumption when any ingredient is short
	assert.Equal(t, 1.0, f.repo.stock[productA])
	assert.Equal(t, 0.05, f.repo.stock[productB])
	assert.False(t, order.Lines[0].IsCooked)
}

func TestMarkPreparedRequiresAllCooked(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 200

	dishA := f.addDish(50, true)
	dishB := f.addDish(60, true)
	order := placeTestOrder(t, f, userID, dishA, dishB)
	orderID := order.ID.String()

	err := f.service.MarkPrepared(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFullyCooked)

	require.NoError(t, f.service.CookLine(context.Background(), order.Lines[0].ID.String()))
	err = f.service.MarkPrepared(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFullyCooked)

	require.NoError(t, f.service.CookLine(context.Background(), order.Lines[1].ID.String()))
	require.NoError(t, f.service.MarkPrepared(context.Background(), orderID))
	assert.True(t, order.IsPrepared)

	err = f.service.MarkPrepared(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPrepared)
}

func TestMarkReceivedGuards(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 100

	dish := f.addDish(50, true)
	order := placeTestOrder(t, f, userID, dish)
	orderID := order.ID.String()

	err := f.service.MarkReceived(context.Background(), orderID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotOrderOwner)

	err = f.service.MarkReceived(context.Background(), orderID, userID)
	assert.ErrorIs(t, err, domain.ErrOrderNotPrepared)

	require.NoError(t, f.service.CookLine(context.Background(), order.Lines[0].ID.String()))
	require.NoError(t, f.service.MarkPrepared(context.Background(), orderID))
	require.NoError(t, f.service.MarkReceived(context.Background(), orderID, userID))
	assert.True(t, order.IsReceived)

	err = f.service.MarkReceived(context.Background(), orderID, userID)
	assert.ErrorIs(t, err, domain.ErrAlreadyReceived)
}

func TestMarkReceivedUnknownOrder(t *testing.T) {
	f := newOrderFixture()
	err := f.service.MarkReceived(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestKitchenViewFlagsUncookableLines(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.wallet.balances[userID] = 200

	cookable := f.addDish(50, true)
	uncookable := f.addDish(60, true)
	f.menu.unfulfillable[uncookable] = true

	placeTestOrder(t, f, userID, cookable, uncookable)

	orders, err := f.service.GetOrdersToPrepare(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	flags := make(map[string]*bool)
	for _, line := range orders[0].Lines {
		flags[line.DishID] = line.CanCook
	}
	require.NotNil(t, flags[cookable])
	require.NotNil(t, flags[uncookable])
	assert.True(t, *flags[cookable])
	assert.False(t, *flags[uncookable])

	// the false flag must survive serialization so the kitchen view can
	// tell "cannot cook" apart from "not reported"
	raw, err := json.Marshal(orders[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"can_cook":false`))
}
