package report

import (
	"School-Canteen-Backend/domain"
	"context"
	"time"
)

type (
	ReportService interface {
		PaymentStats(ctx context.Context) (*domain.PaymentStatsResponse, error)
		OrderStats(ctx context.Context) (*domain.OrderStatsResponse, error)
		ClassAttendanceToday(ctx context.Context) ([]*domain.ClassAttendanceResponse, error)
		PopularDishesToday(ctx context.Context) ([]*domain.DishStatsResponse, error)
		FinancialReport(ctx context.Context) (*domain.FinancialReportResponse, error)
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{
		reportRepository: reportRepository,
	}
}

func (s *reportService) PaymentStats(ctx context.Context) (*domain.PaymentStatsResponse, error) {
	deposits, err := s.reportRepository.SumPaymentsByType(ctx, domain.PaymentTypeDeposit)
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.reportRepository.SumPaymentsByType(ctx, domain.PaymentTypeSubscription)
	if err != nil {
		return nil, err
	}
	purchases, err := s.reportRepository.SumPaymentsByType(ctx, domain.PaymentTypePurchase)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentStatsResponse{
		Deposits:      deposits,
		Subscriptions: subscriptions,
		Purchases:     purchases,
		TotalIncome:   subscriptions + purchases,
	}, nil
}

func (s *reportService) OrderStats(ctx context.Context) (*domain.OrderStatsResponse, error) {
	today := time.Now()

	total, err := s.reportRepository.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	todayCount, err := s.reportRepository.CountOrdersOn(ctx, today)
	if err != nil {
		return nil, err
	}
	received, err := s.reportRepository.CountReceivedOrdersOn(ctx, today)
	if err != nil {
		return nil, err
	}

	return &domain.OrderStatsResponse{
		Total:    total,
		Today:    todayCount,
		Received: received,
	}, nil
}

func (s *reportService) ClassAttendanceToday(ctx context.Context) ([]*domain.ClassAttendanceResponse, error) {
	return s.reportRepository.ClassAttendanceOn(ctx, time.Now())
}

func (s *reportService) PopularDishesToday(ctx context.Context) ([]*domain.DishStatsResponse, error) {
	return s.reportRepository.DishStatsOn(ctx, time.Now())
}

// FinancialReport nets spending income against the cost of approved purchase
// requests. Deposits are excluded from income since they only move money into
// wallets.
func (s *reportService) FinancialReport(ctx context.Context) (*domain.FinancialReportResponse, error) {
	payments, err := s.PaymentStats(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.reportRepository.SumApprovedExpenses(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FinancialReportResponse{
		Payments:  *payments,
		Expenses:  expenses,
		NetIncome: payments.TotalIncome - expenses,
	}, nil
}
