package midtrans

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/internal/utils"
	"School-Canteen-Backend/pkg/notification"
	"School-Canteen-Backend/pkg/wallet"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateTopUp(ctx context.Context, userID string, req *domain.TopUpRequest) (*domain.TopUpResponse, error)
		HandleNotification(ctx context.Context, payload *domain.MidtransNotification) error
	}

	midtransService struct {
		midtransRepository  MidtransRepository
		walletService       wallet.WalletService
		notificationService notification.NotificationService
		snapClient          snap.Client
	}
)

func NewMidtransService(
	midtransRepository MidtransRepository,
	walletService wallet.WalletService,
	notificationService notification.NotificationService,
) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository:  midtransRepository,
		walletService:       walletService,
		notificationService: notificationService,
		snapClient:          client,
	}
}

func (s *midtransService) CreateTopUp(ctx context.Context, userID string, req *domain.TopUpRequest) (*domain.TopUpResponse, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orderRef := fmt.Sprintf("topup-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: int64(req.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, domain.ErrPaymentGateway
	}

	topUp := &entities.TopUp{
		ID:       uuid.New(),
		UserID:   userUUID,
		Amount:   req.Amount,
		OrderRef: orderRef,
		Status:   "pending",
	}
	if err := s.midtransRepository.CreateTopUp(ctx, topUp); err != nil {
		return nil, err
	}

	return &domain.TopUpResponse{
		OrderRef:   orderRef,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes the gateway webhook. The balance is credited
// only on the pending to settled transition, so replayed notifications are
// no-ops.
func (s *midtransService) HandleNotification(ctx context.Context, payload *domain.MidtransNotification) error {
	topUp, err := s.midtransRepository.GetTopUpByOrderRef(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTopUpNotFound
		}
		return err
	}

	switch payload.TransactionStatus {
	case "settlement", "capture":
		if payload.TransactionStatus == "capture" && payload.FraudStatus != "accept" {
			return nil
		}

		settled, err := s.midtransRepository.SettleTopUp(ctx, topUp.OrderRef, "settled")
		if err != nil {
			return err
		}
		if !settled {
			return nil
		}

		if err := s.walletService.Credit(ctx, topUp.UserID.String(), topUp.Amount, domain.PaymentTypeDeposit); err != nil {
			return err
		}
		s.notificationService.Notify(ctx, topUp.UserID.String(),
			fmt.Sprintf("Your top up of %.2f has been credited", topUp.Amount))

	case "deny", "cancel", "expire", "failure":
		if _, err := s.midtransRepository.SettleTopUp(ctx, topUp.OrderRef, "failed"); err != nil {
			return err
		}
	}

	return nil
}
