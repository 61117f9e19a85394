package subscription

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSubscriptionRepo struct {
	subs       map[string]*entities.Subscription
	failCreate bool
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[string]*entities.Subscription)}
}

func (f *fakeSubscriptionRepo) key(userID, mealType string) string {
	return userID + "/" + mealType
}

func (f *fakeSubscriptionRepo) GetSubscription(_ context.Context, userID string, mealType string) (*entities.Subscription, error) {
	sub, ok := f.subs[f.key(userID, mealType)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (f *fakeSubscriptionRepo) GetUserSubscriptions(_ context.Context, userID string) ([]*entities.Subscription, error) {
	var result []*entities.Subscription
	for _, sub := range f.subs {
		if sub.UserID.String() == userID {
			result = append(result, sub)
		}
	}
	return result, nil
}

func (f *fakeSubscriptionRepo) CreateSubscription(_ context.Context, subscription *entities.Subscription) error {
	if f.failCreate {
		return errors.New("create failed")
	}
	f.subs[f.key(subscription.UserID.String(), subscription.MealType)] = subscription
	return nil
}

func (f *fakeSubscriptionRepo) AddMeals(_ context.Context, userID string, mealType string, count int) (bool, error) {
	sub, ok := f.subs[f.key(userID, mealType)]
	if !ok {
		return false, nil
	}
	sub.MealsLeft += count
	return true, nil
}

func (f *fakeSubscriptionRepo) UseMeal(_ context.Context, userID string, mealType string) (bool, error) {
	sub, ok := f.subs[f.key(userID, mealType)]
	if !ok || sub.MealsLeft <= 0 {
		return false, nil
	}
	sub.MealsLeft--
	return true, nil
}

type fakeWallet struct {
	balances map[string]float64
	payments map[string]string // payment id -> type
}

func newFakeWallet() *fakeWallet {
	return &fakeWallet{
		balances: make(map[string]float64),
		payments: make(map[string]string),
	}
}

func (f *fakeWallet) Balance(_ context.Context, userID string) (*domain.BalanceResponse, error) {
	return &domain.BalanceResponse{Balance: f.balances[userID]}, nil
}

func (f *fakeWallet) Credit(_ context.Context, userID string, amount float64, paymentType string) error {
	f.balances[userID] += amount
	f.payments[uuid.New().String()] = paymentType
	return nil
}

func (f *fakeWallet) Debit(_ context.Context, userID string, amount float64, paymentType string) (string, error) {
	if f.balances[userID] < amount {
		return "", domain.ErrInsufficientFunds
	}
	f.balances[userID] -= amount
	id := uuid.New().String()
	f.payments[id] = paymentType
	return id, nil
}

func (f *fakeWallet) Refund(_ context.Context, userID string, amount float64, paymentID string) error {
	f.balances[userID] += amount
	delete(f.payments, paymentID)
	return nil
}

func (f *fakeWallet) paymentTypes() []string {
	var types []string
	for _, t := range f.payments {
		types = append(types, t)
	}
	return types
}

func (f *fakeWallet) Payments(context.Context, string) ([]*domain.PaymentResponse, error) {
	return nil, nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, string, string)     {}
func (noopNotifier) NotifyRole(context.Context, string, string) {}
func (noopNotifier) List(context.Context, string) ([]*domain.NotificationResponse, error) {
	return nil, nil
}
func (noopNotifier) UnreadCount(context.Context, string) (int64, error) { return 0, nil }

func TestGrantCreatesThenAccumulates(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	service := NewSubscriptionService(repo, newFakeWallet(), noopNotifier{})
	userID := uuid.New().String()

	require.NoError(t, service.Grant(context.Background(), userID, domain.MealTypeLunch, 5))
	credits, err := service.Credits(context.Background(), userID, domain.MealTypeLunch)
	require.NoError(t, err)
	assert.Equal(t, 5, credits)

	require.NoError(t, service.Grant(context.Background(), userID, domain.MealTypeLunch, 3))
	credits, err = service.Credits(context.Background(), userID, domain.MealTypeLunch)
	require.NoError(t, err)
	assert.Equal(t, 8, credits)

	// other meal type is a separate account
	credits, err = service.Credits(context.Background(), userID, domain.MealTypeBreakfast)
	require.NoError(t, err)
	assert.Equal(t, 0, credits)
}

func TestGrantValidation(t *testing.T) {
	service := NewSubscriptionService(newFakeSubscriptionRepo(), newFakeWallet(), noopNotifier{})
	userID := uuid.New().String()

	err := service.Grant(context.Background(), userID, domain.MealTypeLunch, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidSubscriptionCount)

	err = service.Grant(context.Background(), userID, "dinner", 2)
	assert.ErrorIs(t, err, domain.ErrInvalidMealType)
}

func TestConsumeOneDrainsToZero(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	service := NewSubscriptionService(repo, newFakeWallet(), noopNotifier{})
	userID := uuid.New().String()

	require.NoError(t, service.Grant(context.Background(), userID, domain.MealTypeBreakfast, 2))

	for i := 0; i < 2; i++ {
		ok, err := service.ConsumeOne(context.Background(), userID, domain.MealTypeBreakfast)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := service.ConsumeOne(context.Background(), userID, domain.MealTypeBreakfast)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuyDebitsWalletAtListPrice(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	wallet := newFakeWallet()
	service := NewSubscriptionService(repo, wallet, noopNotifier{})
	userID := uuid.New().String()
	wallet.balances[userID] = 1000

	require.NoError(t, service.Buy(context.Background(), domain.BuySubscriptionRequest{
		MealType: domain.MealTypeLunch,
		Count:    5,
	}, userID))

	// 5 lunches at the fixed lunch price
	assert.Equal(t, 1000-5*domain.SubscriptionPrices[domain.MealTypeLunch], wallet.balances[userID])
	assert.Contains(t, wallet.paymentTypes(), domain.PaymentTypeSubscription)

	credits, err := service.Credits(context.Background(), userID, domain.MealTypeLunch)
	require.NoError(t, err)
	assert.Equal(t, 5, credits)
}

func TestBuyInsufficientFunds(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	wallet := newFakeWallet()
	service := NewSubscriptionService(repo, wallet, noopNotifier{})
	userID := uuid.New().String()
	wallet.balances[userID] = 100

	err := service.Buy(context.Background(), domain.BuySubscriptionRequest{
		MealType: domain.MealTypeLunch,
		Count:    5,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 100.0, wallet.balances[userID])

	credits, err := service.Credits(context.Background(), userID, domain.MealTypeLunch)
	require.NoError(t, err)
	assert.Equal(t, 0, credits)
}

func TestBuyRevertsChargeWhenGrantFails(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.failCreate = true
	wallet := newFakeWallet()
	service := NewSubscriptionService(repo, wallet, noopNotifier{})
	userID := uuid.New().String()
	wallet.balances[userID] = 1000

	err := service.Buy(context.Background(), domain.BuySubscriptionRequest{
		MealType: domain.MealTypeLunch,
		Count:    2,
	}, userID)
	require.Error(t, err)

	// money back and no subscription charge left behind in the ledger
	assert.Equal(t, 1000.0, wallet.balances[userID])
	assert.Empty(t, wallet.payments)

	credits, err := service.Credits(context.Background(), userID, domain.MealTypeLunch)
	require.NoError(t, err)
	assert.Equal(t, 0, credits)
}
