package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
	domainmocks "github.com/vitawin/referral-engine/internal/domain/mocks"
)

func TestOrderService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	pending := &domain.Order{ID: 10, UserID: 4, Total: dec("1000"), PaymentStatus: domain.PaymentStatusPending}
	paid := &domain.Order{ID: 10, UserID: 4, Total: dec("1000"), PaymentStatus: domain.PaymentStatusPaid}
	failed := &domain.Order{ID: 10, UserID: 4, Total: dec("1000"), PaymentStatus: domain.PaymentStatusFailed}
	credited := &domain.CreditResult{OrderID: 10, BuyerID: 4}

	t.Run("Success", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		commissions := domainmocks.NewCommissionServiceMock(t)
		svc := NewOrderService(orderRepo, commissions)

		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(pending, nil).Once()
		orderRepo.EXPECT().TransitionPaymentStatus(mock.Anything, int64(10), domain.PaymentStatusPending, domain.PaymentStatusPaid).
			Return(true, nil).Once()
		commissions.EXPECT().ProcessPaidOrder(mock.Anything, int64(10)).Return(credited, nil).Once()

		result, err := svc.MarkPaid(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, credited, result)
	})

	t.Run("Already paid is processed again", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		commissions := domainmocks.NewCommissionServiceMock(t)
		svc := NewOrderService(orderRepo, commissions)

		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(paid, nil).Once()
		commissions.EXPECT().ProcessPaidOrder(mock.Anything, int64(10)).
			Return(&domain.CreditResult{OrderID: 10, AlreadyProcessed: true}, nil).Once()

		result, err := svc.MarkPaid(ctx, 10)
		require.NoError(t, err)
		assert.True(t, result.AlreadyProcessed)
	})

	t.Run("Failed order", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		commissions := domainmocks.NewCommissionServiceMock(t)
		svc := NewOrderService(orderRepo, commissions)

		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(failed, nil).Once()

		result, err := svc.MarkPaid(ctx, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
		assert.Nil(t, result)
	})

	t.Run("Concurrent transition to paid", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		commissions := domainmocks.NewCommissionServiceMock(t)
		svc := NewOrderService(orderRepo, commissions)

		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(pending, nil).Once()
		orderRepo.EXPECT().TransitionPaymentStatus(mock.Anything, int64(10), domain.PaymentStatusPending, domain.PaymentStatusPaid).
			Return(false, nil).Once()
		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(paid, nil).Once()
		commissions.EXPECT().ProcessPaidOrder(mock.Anything, int64(10)).Return(credited, nil).Once()

		_, err := svc.MarkPaid(ctx, 10)
		assert.NoError(t, err)
	})

	t.Run("Concurrent transition to failed", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		commissions := domainmocks.NewCommissionServiceMock(t)
		svc := NewOrderService(orderRepo, commissions)

		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(pending, nil).Once()
		orderRepo.EXPECT().TransitionPaymentStatus(mock.Anything, int64(10), domain.PaymentStatusPending, domain.PaymentStatusPaid).
			Return(false, nil).Once()
		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(failed, nil).Once()

		_, err := svc.MarkPaid(ctx, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("Order not found", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		commissions := domainmocks.NewCommissionServiceMock(t)
		svc := NewOrderService(orderRepo, commissions)

		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(99)).Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.MarkPaid(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Commission error", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		commissions := domainmocks.NewCommissionServiceMock(t)
		svc := NewOrderService(orderRepo, commissions)

		orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(paid, nil).Once()
		commissions.EXPECT().ProcessPaidOrder(mock.Anything, int64(10)).Return(nil, errors.New("db error")).Once()

		result, err := svc.MarkPaid(ctx, 10)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestOrderService_MarkFailed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     domain.PaymentStatus
		transition bool
		swapped    bool
		wantErr    error
	}{
		{name: "Pending", status: domain.PaymentStatusPending, transition: true, swapped: true},
		{name: "Already failed", status: domain.PaymentStatusFailed},
		{name: "Paid", status: domain.PaymentStatusPaid, wantErr: domain.ErrInvalidStatusTransition},
		{name: "Concurrent change", status: domain.PaymentStatusPending, transition: true, swapped: false, wantErr: domain.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := domainmocks.NewOrderRepositoryMock(t)
			svc := NewOrderService(orderRepo, domainmocks.NewCommissionServiceMock(t))

			orderRepo.EXPECT().GetOrderByID(mock.Anything, int64(10)).
				Return(&domain.Order{ID: 10, PaymentStatus: tt.status}, nil).Once()
			if tt.transition {
				orderRepo.EXPECT().TransitionPaymentStatus(mock.Anything, int64(10), domain.PaymentStatusPending, domain.PaymentStatusFailed).
					Return(tt.swapped, nil).Once()
			}

			err := svc.MarkFailed(ctx, 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
