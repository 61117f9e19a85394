package order

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/pkg/menu"
	"School-Canteen-Backend/pkg/notification"
	"School-Canteen-Backend/pkg/subscription"
	"School-Canteen-Backend/pkg/wallet"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error)
		CookLine(ctx context.Context, lineID string) error
		MarkPrepared(ctx context.Context, orderID string) error
		MarkReceived(ctx context.Context, orderID string, userID string) error
		GetUserOrders(ctx context.Context, userID string) ([]*domain.OrderResponse, error)
		GetOrdersToPrepare(ctx context.Context) ([]*domain.OrderResponse, error)
		GetIssuedToday(ctx context.Context) ([]*domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository     OrderRepository
		menuService         menu.MenuService
		walletService       wallet.WalletService
		subscriptionService subscription.SubscriptionService
		notificationService notification.NotificationService
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	menuService menu.MenuService,
	walletService wallet.WalletService,
	subscriptionService subscription.SubscriptionService,
	notificationService notification.NotificationService,
) OrderService {
	return &orderService{
		orderRepository:     orderRepository,
		menuService:         menuService,
		walletService:       walletService,
		subscriptionService: subscriptionService,
		notificationService: notificationService,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error) {
	if len(req.DishIDs) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if _, ok := domain.SubscriptionPrices[req.MealType]; !ok {
		return nil, domain.ErrInvalidMealType
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// Pre-check every dish against the composite availability rule before
	// touching money or credits.
	dishes := make([]*domain.DishResponse, 0, len(req.DishIDs))
	total := 0.0
	for _, dishID := range req.DishIDs {
		dish, err := s.menuService.GetDish(ctx, dishID)
		if err != nil {
			return nil, err
		}
		if !dish.IsOrderable {
			return nil, domain.ErrUnavailableDish
		}
		dishes = append(dishes, dish)
		total += dish.Price
	}

	today := dateOnly(time.Now())

	var paymentID string
	if req.UseSubscription {
		used, err := s.orderRepository.CountSubscriptionOrders(ctx, userID, req.MealType, today)
		if err != nil {
			return nil, err
		}
		if used >= 1 {
			return nil, domain.ErrSubscriptionAlreadyUsed
		}

		consumed, err := s.subscriptionService.ConsumeOne(ctx, userID, req.MealType)
		if err != nil {
			return nil, err
		}
		if !consumed {
			return nil, domain.ErrNoSubscriptionCredit
		}
	} else {
		paymentID, err = s.walletService.Debit(ctx, userID, total, domain.PaymentTypePurchase)
		if err != nil {
			return nil, err
		}
	}

	order := &entities.Order{
		ID:             uuid.New(),
		UserID:         userUUID,
		Date:           today,
		MealType:       req.MealType,
		IsSubscription: req.UseSubscription,
	}
	lines := make([]*entities.OrderLine, 0, len(dishes))
	for _, dish := range dishes {
		dishUUID, err := uuid.Parse(dish.ID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		lines = append(lines, &entities.OrderLine{
			ID:      uuid.New(),
			OrderID: order.ID,
			DishID:  dishUUID,
			Price:   dish.Price, // snapshot at order time
		})
	}

	if err := s.orderRepository.CreateOrderWithLines(ctx, order, lines); err != nil {
		// Undo the charge so a failed order leaves no trace.
		if req.UseSubscription {
			if grantErr := s.subscriptionService.Grant(ctx, userID, req.MealType, 1); grantErr != nil {
				return nil, grantErr
			}
		} else {
			if refundErr := s.walletService.Refund(ctx, userID, total, paymentID); refundErr != nil {
				return nil, refundErr
			}
		}
		return nil, err
	}

	if req.UseSubscription {
		s.notificationService.Notify(ctx, userID, "Subscription order placed.")
	} else {
		s.notificationService.Notify(ctx, userID, fmt.Sprintf("Order for %.2f placed!", total))
	}
	s.notificationService.NotifyRole(ctx, domain.RoleCook, fmt.Sprintf("New order #%s", order.ID.String()))

	return &domain.PlaceOrderResponse{
		OrderID:        order.ID.String(),
		Total:          total,
		IsSubscription: req.UseSubscription,
	}, nil
}

// CookLine is the authoritative stock check: the repository re-verifies
// every recipe entry and consumes stock in the same transaction that flips
// the line cooked. Ordering never reserves stock, so this is the single
// point of depletion.
func (s *orderService) CookLine(ctx context.Context, lineID string) error {
	line, err := s.orderRepository.GetOrderLineByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderLineNotFound
		}
		return err
	}
	if line.IsCooked {
		return domain.ErrLineAlreadyCooked
	}

	ingredients, err := s.menuService.IngredientsFor(ctx, line.DishID.String())
	if err != nil {
		return err
	}

	return s.orderRepository.CookLine(ctx, lineID, ingredients)
}

func (s *orderService) MarkPrepared(ctx context.Context, orderID string) error {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	if order.IsPrepared {
		return domain.ErrAlreadyPrepared
	}
	for _, line := range order.Lines {
		if !line.IsCooked {
			return domain.ErrOrderNotFullyCooked
		}
	}

	if err := s.orderRepository.MarkOrderPrepared(ctx, orderID); err != nil {
		return err
	}

	s.notificationService.Notify(ctx, order.UserID.String(),
		fmt.Sprintf("Order #%s is ready for pickup!", order.ID.String()))
	return nil
}

func (s *orderService) MarkReceived(ctx context.Context, orderID string, userID string) error {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	if order.UserID.String() != userID {
		return domain.ErrNotOrderOwner
	}
	if order.IsReceived {
		return domain.ErrAlreadyReceived
	}
	if !order.IsPrepared {
		return domain.ErrOrderNotPrepared
	}

	return s.orderRepository.MarkOrderReceived(ctx, orderID)
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]*domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toOrderResponses(ctx, orders, false)
}

func (s *orderService) GetOrdersToPrepare(ctx context.Context) ([]*domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersToPrepare(ctx, dateOnly(time.Now()))
	if err != nil {
		return nil, err
	}
	return s.toOrderResponses(ctx, orders, true)
}

func (s *orderService) GetIssuedToday(ctx context.Context) ([]*domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetReceivedOrders(ctx, dateOnly(time.Now()))
	if err != nil {
		return nil, err
	}
	return s.toOrderResponses(ctx, orders, false)
}

func (s *orderService) toOrderResponses(ctx context.Context, orders []*entities.Order, withCanCook bool) ([]*domain.OrderResponse, error) {
	result := make([]*domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp := &domain.OrderResponse{
			ID:             order.ID.String(),
			UserID:         order.UserID.String(),
			Date:           order.Date,
			MealType:       order.MealType,
			IsSubscription: order.IsSubscription,
			IsPrepared:     order.IsPrepared,
			IsReceived:     order.IsReceived,
			CreatedAt:      order.CreatedAt,
		}
		if order.User != nil {
			resp.UserName = order.User.FullName
			resp.ClassName = order.User.ClassName
		}

		for _, line := range order.Lines {
			lineResp := domain.OrderLineResponse{
				ID:       line.ID.String(),
				DishID:   line.DishID.String(),
				Price:    line.Price,
				IsCooked: line.IsCooked,
			}
			if line.Dish != nil {
				lineResp.DishName = line.Dish.Name
			}
			if withCanCook && !line.IsCooked {
				canCook, err := s.menuService.IsFulfillable(ctx, line.DishID.String())
				if err != nil {
					return nil, err
				}
				lineResp.CanCook = &canCook
			}
			resp.Total += line.Price
			resp.Lines = append(resp.Lines, lineResp)
		}
		result = append(result, resp)
	}
	return result, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
