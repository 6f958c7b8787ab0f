package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vitawin/referral-engine/internal/domain"
	domainmocks "github.com/vitawin/referral-engine/internal/domain/mocks"
	"go.uber.org/zap"
)

func TestPool_ProcessOrder(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockCommissions := domainmocks.NewCommissionServiceMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, time.Second, mockOrderRepo, mockCommissions, logger)

	ctx := context.Background()
	result := &domain.CreditResult{
		OrderID: 10,
		BuyerID: 4,
		Credits: []domain.Credit{{UserID: 3, Level: 1, Type: domain.BonusTypeReferral}},
	}

	mockCommissions.EXPECT().ProcessPaidOrder(mock.Anything, int64(10)).Return(result, nil).Once()

	assert.True(t, pool.acquire(10))
	pool.processOrder(ctx, 10)

	// после обработки заказ снова может быть поставлен в очередь
	assert.True(t, pool.acquire(10))
}

func TestPool_ProcessOrder_Error(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockCommissions := domainmocks.NewCommissionServiceMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, time.Second, mockOrderRepo, mockCommissions, logger)

	mockCommissions.EXPECT().ProcessPaidOrder(mock.Anything, int64(10)).
		Return(nil, errors.New("db error")).Once()

	pool.acquire(10)
	pool.processOrder(context.Background(), 10)

	assert.True(t, pool.acquire(10))
}

func TestPool_ScanUnprocessedOrders(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockCommissions := domainmocks.NewCommissionServiceMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, time.Second, mockOrderRepo, mockCommissions, logger)

	ctx := context.Background()

	paidOrders := []*domain.Order{
		{ID: 1, PaymentStatus: domain.PaymentStatusPaid},
		{ID: 2, PaymentStatus: domain.PaymentStatusPaid},
	}

	mockOrderRepo.EXPECT().GetUnprocessedPaidOrders(mock.Anything, 10).Return(paidOrders, nil).Twice()

	pool.scanUnprocessedOrders(ctx)
	// заказы уже в очереди и не дублируются
	pool.scanUnprocessedOrders(ctx)

	assert.Len(t, pool.queue, 2)
	assert.Equal(t, int64(1), <-pool.queue)
	assert.Equal(t, int64(2), <-pool.queue)
}

func TestPool_ScanUnprocessedOrders_QueueFull(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockCommissions := domainmocks.NewCommissionServiceMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 1, time.Second, mockOrderRepo, mockCommissions, logger)

	mockOrderRepo.EXPECT().GetUnprocessedPaidOrders(mock.Anything, 1).Return([]*domain.Order{
		{ID: 1, PaymentStatus: domain.PaymentStatusPaid},
		{ID: 2, PaymentStatus: domain.PaymentStatusPaid},
	}, nil).Once()

	pool.scanUnprocessedOrders(context.Background())

	assert.Len(t, pool.queue, 1)
	// пропущенный заказ будет найден следующим сканированием
	assert.True(t, pool.acquire(2))
}

func TestPool_StartStop(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockCommissions := domainmocks.NewCommissionServiceMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(2, 10, 20*time.Millisecond, mockOrderRepo, mockCommissions, logger)

	processed := make(chan int64, 1)
	mockOrderRepo.EXPECT().GetUnprocessedPaidOrders(mock.Anything, 10).
		Return([]*domain.Order{{ID: 7, PaymentStatus: domain.PaymentStatusPaid}}, nil).Maybe()
	mockCommissions.EXPECT().ProcessPaidOrder(mock.Anything, int64(7)).
		Run(func(_ context.Context, orderID int64) {
			select {
			case processed <- orderID:
			default:
			}
		}).
		Return(&domain.CreditResult{OrderID: 7, AlreadyProcessed: true}, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	select {
	case id := <-processed:
		assert.Equal(t, int64(7), id)
	case <-time.After(2 * time.Second):
		t.Error("expected order to be processed, got timeout")
	}

	cancel()
	pool.Stop()
}
