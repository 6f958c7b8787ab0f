package service

import (
	"context"
	"fmt"

	"github.com/vitawin/referral-engine/internal/domain"
)

// OrderService реализует domain.OrderService
type OrderService struct {
	orderRepo   domain.OrderRepository
	commissions domain.CommissionService
}

// NewOrderService создает новый OrderService
func NewOrderService(orderRepo domain.OrderRepository, commissions domain.CommissionService) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		commissions: commissions,
	}
}

// MarkPaid переводит заказ из pending в paid и запускает начисление бонусов.
// Повторная отметка оплаченного заказа повторно запускает начисление,
// которое для обработанного заказа ничего не делает.
func (s *OrderService) MarkPaid(ctx context.Context, orderID int64) (*domain.CreditResult, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch order.PaymentStatus {
	case domain.PaymentStatusFailed:
		return nil, domain.ErrInvalidStatusTransition
	case domain.PaymentStatusPending:
		ok, err := s.orderRepo.TransitionPaymentStatus(ctx, orderID, domain.PaymentStatusPending, domain.PaymentStatusPaid)
		if err != nil {
			return nil, fmt.Errorf("order service: failed to mark order %d paid: %w", orderID, err)
		}
		if !ok {
			// статус изменился параллельно, перечитываем
			order, err = s.getOrder(ctx, orderID)
			if err != nil {
				return nil, err
			}
			if order.PaymentStatus != domain.PaymentStatusPaid {
				return nil, domain.ErrInvalidStatusTransition
			}
		}
	}

	return s.commissions.ProcessPaidOrder(ctx, orderID)
}

// MarkFailed переводит заказ из pending в failed
func (s *OrderService) MarkFailed(ctx context.Context, orderID int64) error {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}

	switch order.PaymentStatus {
	case domain.PaymentStatusFailed:
		return nil
	case domain.PaymentStatusPaid:
		return domain.ErrInvalidStatusTransition
	}

	ok, err := s.orderRepo.TransitionPaymentStatus(ctx, orderID, domain.PaymentStatusPending, domain.PaymentStatusFailed)
	if err != nil {
		return fmt.Errorf("order service: failed to mark order %d failed: %w", orderID, err)
	}
	if !ok {
		return domain.ErrInvalidStatusTransition
	}

	return nil
}

func (s *OrderService) getOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if isOneOf(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %d: %w", orderID, err)
	}
	return order, nil
}
