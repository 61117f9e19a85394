package wallet

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WalletService interface {
		Balance(ctx context.Context, userID string) (*domain.BalanceResponse, error)
		Credit(ctx context.Context, userID string, amount float64, paymentType string) error
		Debit(ctx context.Context, userID string, amount float64, paymentType string) (string, error)
		Refund(ctx context.Context, userID string, amount float64, paymentID string) error
		Payments(ctx context.Context, userID string) ([]*domain.PaymentResponse, error)
	}

	walletService struct {
		walletRepository WalletRepository
	}
)

func NewWalletService(walletRepository WalletRepository) WalletService {
	return &walletService{
		walletRepository: walletRepository,
	}
}

func (s *walletService) Balance(ctx context.Context, userID string) (*domain.BalanceResponse, error) {
	balance, err := s.walletRepository.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &domain.BalanceResponse{Balance: balance}, nil
}

func (s *walletService) Credit(ctx context.Context, userID string, amount float64, paymentType string) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := s.walletRepository.AddBalance(ctx, userID, amount); err != nil {
		return err
	}

	return s.walletRepository.CreatePayment(ctx, &entities.Payment{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      amount,
		PaymentType: paymentType,
	})
}

// Debit charges the wallet and records the Payment row, returning the
// row's id so the caller can revert the whole charge if its own write
// fails afterwards.
func (s *walletService) Debit(ctx context.Context, userID string, amount float64, paymentType string) (string, error) {
	if amount <= 0 {
		return "", domain.ErrInvalidAmount
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	ok, err := s.walletRepository.SubtractBalance(ctx, userID, amount)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrInsufficientFunds
	}

	payment := &entities.Payment{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      amount,
		PaymentType: paymentType,
	}
	if err := s.walletRepository.CreatePayment(ctx, payment); err != nil {
		return "", err
	}
	return payment.ID.String(), nil
}

// Refund unwinds a prior Debit: it restores the balance and deletes the
// charge row, so a failed order leaves neither a payment-history entry
// nor income in the reports.
func (s *walletService) Refund(ctx context.Context, userID string, amount float64, paymentID string) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	return s.walletRepository.RevertPayment(ctx, userID, amount, paymentID)
}

func (s *walletService) Payments(ctx context.Context, userID string) ([]*domain.PaymentResponse, error) {
	payments, err := s.walletRepository.GetUserPayments(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, &domain.PaymentResponse{
			ID:          p.ID.String(),
			Amount:      p.Amount,
			PaymentType: p.PaymentType,
			CreatedAt:   p.CreatedAt,
		})
	}
	return result, nil
}
