package subscription

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/pkg/notification"
	"School-Canteen-Backend/pkg/wallet"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		Credits(ctx context.Context, userID string, mealType string) (int, error)
		Grant(ctx context.Context, userID string, mealType string, count int) error
		ConsumeOne(ctx context.Context, userID string, mealType string) (bool, error)
		Buy(ctx context.Context, req domain.BuySubscriptionRequest, userID string) error
		List(ctx context.Context, userID string) ([]*domain.SubscriptionResponse, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		walletService          wallet.WalletService
		notificationService    notification.NotificationService
	}
)

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	walletService wallet.WalletService,
	notificationService notification.NotificationService,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		walletService:          walletService,
		notificationService:    notificationService,
	}
}

func (s *subscriptionService) Credits(ctx context.Context, userID string, mealType string) (int, error) {
	subscription, err := s.subscriptionRepository.GetSubscription(ctx, userID, mealType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return subscription.MealsLeft, nil
}

// Grant adds credits, creating the account on first grant.
func (s *subscriptionService) Grant(ctx context.Context, userID string, mealType string, count int) error {
	if count <= 0 {
		return domain.ErrInvalidSubscriptionCount
	}
	if _, ok := domain.SubscriptionPrices[mealType]; !ok {
		return domain.ErrInvalidMealType
	}

	updated, err := s.subscriptionRepository.AddMeals(ctx, userID, mealType, count)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.subscriptionRepository.CreateSubscription(ctx, &entities.Subscription{
		ID:        uuid.New(),
		UserID:    userUUID,
		MealType:  mealType,
		MealsLeft: count,
	})
}

func (s *subscriptionService) ConsumeOne(ctx context.Context, userID string, mealType string) (bool, error) {
	return s.subscriptionRepository.UseMeal(ctx, userID, mealType)
}

func (s *subscriptionService) Buy(ctx context.Context, req domain.BuySubscriptionRequest, userID string) error {
	price, ok := domain.SubscriptionPrices[req.MealType]
	if !ok {
		return domain.ErrInvalidMealType
	}
	if req.Count <= 0 {
		return domain.ErrInvalidSubscriptionCount
	}

	total := price * float64(req.Count)
	paymentID, err := s.walletService.Debit(ctx, userID, total, domain.PaymentTypeSubscription)
	if err != nil {
		return err
	}

	if err := s.Grant(ctx, userID, req.MealType, req.Count); err != nil {
		// The debit already went through; put the money and the ledger back.
		if refundErr := s.walletService.Refund(ctx, userID, total, paymentID); refundErr != nil {
			return refundErr
		}
		return err
	}

	s.notificationService.Notify(ctx, userID,
		fmt.Sprintf("Subscription purchased: %d %s meals", req.Count, req.MealType))
	return nil
}

func (s *subscriptionService) List(ctx context.Context, userID string) ([]*domain.SubscriptionResponse, error) {
	subscriptions, err := s.subscriptionRepository.GetUserSubscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.SubscriptionResponse, 0, len(subscriptions))
	for _, sub := range subscriptions {
		result = append(result, &domain.SubscriptionResponse{
			MealType:  sub.MealType,
			MealsLeft: sub.MealsLeft,
		})
	}
	return result, nil
}
