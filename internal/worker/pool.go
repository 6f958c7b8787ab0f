package worker

import (
	"context"
	"sync"
	"time"

	"github.com/vitawin/referral-engine/internal/domain"
	"go.uber.org/zap"
)

// DefaultScanInterval период поиска оплаченных, но не обработанных заказов
const DefaultScanInterval = 10 * time.Second

// Pool представляет пул воркеров, доначисляющих бонусы по оплаченным заказам.
// Заказы, для которых начисление не было выполнено синхронно (сбой, рестарт),
// находит сканер и отправляет в очередь.
type Pool struct {
	workers      int
	queue        chan int64
	orderRepo    domain.OrderRepository
	commissions  domain.CommissionService
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanWg       sync.WaitGroup
	cancel       context.CancelFunc
	scanInterval time.Duration

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	orderRepo domain.OrderRepository,
	commissions domain.CommissionService,
	logger *zap.Logger,
) *Pool {
	if scanInterval <= 0 {
		scanInterval = DefaultScanInterval
	}

	return &Pool{
		workers:      workers,
		queue:        make(chan int64, queueSize),
		orderRepo:    orderRepo,
		commissions:  commissions,
		logger:       logger,
		scanInterval: scanInterval,
		inFlight:     make(map[int64]struct{}),
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.scanWg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool. Очередь закрывается только после
// остановки сканера, который в нее пишет.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.scanWg.Wait()
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case orderID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processOrder(ctx, orderID)
		}
	}
}

// scanner периодически ищет необработанные оплаченные заказы
func (p *Pool) scanner(ctx context.Context) {
	defer p.scanWg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanUnprocessedOrders(ctx)
		}
	}
}

// scanUnprocessedOrders отправляет в очередь оплаченные заказы без начислений.
// Заказ, уже стоящий в очереди, повторно не добавляется.
func (p *Pool) scanUnprocessedOrders(ctx context.Context) {
	orders, err := p.orderRepo.GetUnprocessedPaidOrders(ctx, cap(p.queue))
	if err != nil {
		p.logger.Error("failed to get unprocessed paid orders", zap.Error(err))
		return
	}

	for _, order := range orders {
		if !p.acquire(order.ID) {
			continue
		}

		select {
		case p.queue <- order.ID:
		case <-ctx.Done():
			p.release(order.ID)
			return
		default:
			p.release(order.ID)
			p.logger.Warn("queue is full, skipping order", zap.Int64("order_id", order.ID))
		}
	}
}

// processOrder начисляет бонусы по одному заказу
func (p *Pool) processOrder(ctx context.Context, orderID int64) {
	defer p.release(orderID)

	p.logger.Debug("processing order", zap.Int64("order_id", orderID))

	result, err := p.commissions.ProcessPaidOrder(ctx, orderID)
	if err != nil {
		p.logger.Error("failed to process paid order",
			zap.Int64("order_id", orderID),
			zap.Error(err),
		)
		return
	}

	if result.AlreadyProcessed {
		return
	}

	p.logger.Info("order processed successfully",
		zap.Int64("order_id", orderID),
		zap.Int("credits", len(result.Credits)),
	)
}

func (p *Pool) acquire(orderID int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.inFlight[orderID]; ok {
		return false
	}
	p.inFlight[orderID] = struct{}{}
	return true
}

func (p *Pool) release(orderID int64) {
	p.mu.Lock()
	delete(p.inFlight, orderID)
	p.mu.Unlock()
}
