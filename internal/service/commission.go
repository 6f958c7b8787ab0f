package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
	"go.uber.org/zap"
)

// Исходы обработки заказа для метрик
const (
	OutcomeCredited = "credited"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

// notifyTimeout ограничивает отправку уведомлений по одному заказу
const notifyTimeout = 30 * time.Second

// CommissionObserver получает события обработки оплаченных заказов
type CommissionObserver interface {
	OrderProcessed(outcome string, duration time.Duration)
	BonusCredited(bonusType domain.BonusType, amount decimal.Decimal)
}

// CommissionService реализует domain.CommissionService
type CommissionService struct {
	ledgerRepo domain.LedgerRepository
	logRepo    domain.ProcessingLogRepository
	notifier   domain.Notifier
	observer   CommissionObserver
	logger     *zap.Logger

	notifications sync.WaitGroup
}

// NewCommissionService создает новый CommissionService
func NewCommissionService(
	ledgerRepo domain.LedgerRepository,
	logRepo domain.ProcessingLogRepository,
	notifier domain.Notifier,
	observer CommissionObserver,
	logger *zap.Logger,
) *CommissionService {
	return &CommissionService{
		ledgerRepo: ledgerRepo,
		logRepo:    logRepo,
		notifier:   notifier,
		observer:   observer,
		logger:     logger,
	}
}

// ProcessPaidOrder начисляет бонусы по оплаченному заказу.
//
// Повторный вызов для уже обработанного заказа ничего не начисляет и
// возвращает результат с AlreadyProcessed. Уведомления отправляются в фоне
// после фиксации транзакции, их ошибки только логируются.
func (s *CommissionService) ProcessPaidOrder(ctx context.Context, orderID int64) (*domain.CreditResult, error) {
	runID := uuid.NewString()
	start := time.Now()

	s.appendLog(ctx, orderID, runID, domain.StageStarted, nil)

	result, err := s.ledgerRepo.CreditOrder(ctx, orderID, mlm.PlanCredits)
	if err != nil {
		if isOneOf(err, domain.ErrCommissionAlreadyProcessed) {
			s.appendLog(ctx, orderID, runID, domain.StageSkipped, map[string]any{"reason": "already_processed"})
			s.observer.OrderProcessed(OutcomeSkipped, time.Since(start))
			s.logger.Info("order bonuses already processed", zap.Int64("order_id", orderID))
			return &domain.CreditResult{OrderID: orderID, AlreadyProcessed: true}, nil
		}

		s.appendLog(ctx, orderID, runID, domain.StageFailed, map[string]any{"error": err.Error()})
		s.observer.OrderProcessed(OutcomeFailed, time.Since(start))
		s.logger.Error("failed to credit order bonuses",
			zap.Int64("order_id", orderID),
			zap.String("run_id", runID),
			zap.Error(err),
		)

		if isOneOf(err, domain.ErrOrderNotFound, domain.ErrOrderNotPaid, domain.ErrDuplicateCredit, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("commission service: failed to process order %d: %w", orderID, err)
	}

	total := decimal.Zero
	for _, credit := range result.Credits {
		total = total.Add(credit.Amount)
		s.observer.BonusCredited(credit.Type, credit.Amount)
	}

	s.appendLog(ctx, orderID, runID, domain.StageCredited, map[string]any{
		"buyer_id": result.BuyerID,
		"credits":  len(result.Credits),
		"total":    total.StringFixed(2),
	})
	s.observer.OrderProcessed(OutcomeCredited, time.Since(start))
	s.logger.Info("order bonuses credited",
		zap.Int64("order_id", orderID),
		zap.Int64("buyer_id", result.BuyerID),
		zap.Int("credits", len(result.Credits)),
		zap.String("total", total.StringFixed(2)),
	)

	s.notifyAsync(ctx, result)

	return result, nil
}

// GetProcessingLog возвращает журнал обработки заказа
func (s *CommissionService) GetProcessingLog(ctx context.Context, orderID int64) ([]*domain.ProcessingLogEntry, error) {
	entries, err := s.logRepo.GetProcessingLog(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("commission service: failed to get processing log for order %d: %w", orderID, err)
	}
	return entries, nil
}

func (s *CommissionService) appendLog(ctx context.Context, orderID int64, runID string, stage domain.ProcessingStage, details map[string]any) {
	err := s.logRepo.AppendProcessingLog(ctx, domain.ProcessingLogEntry{
		OrderID: orderID,
		RunID:   runID,
		Stage:   stage,
		Details: details,
	})
	if err != nil {
		s.logger.Warn("failed to append processing log",
			zap.Int64("order_id", orderID),
			zap.String("stage", string(stage)),
			zap.Error(err),
		)
	}
}

// WaitNotifications ждет завершения уже запущенных отправок уведомлений
func (s *CommissionService) WaitNotifications() {
	s.notifications.Wait()
}

// notifyAsync отправляет уведомления в отдельной горутине. Отмена контекста
// запроса не прерывает отправку.
func (s *CommissionService) notifyAsync(ctx context.Context, result *domain.CreditResult) {
	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()

		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		s.notify(notifyCtx, result)
	}()
}

// notify уведомляет вышестоящих пользователей о начисленных бонусах
func (s *CommissionService) notify(ctx context.Context, result *domain.CreditResult) {
	for _, credit := range result.Credits {
		if credit.Level == domain.BonusCoinsLevel || credit.TelegramID == 0 {
			continue
		}

		if err := s.notifier.NotifyBonus(ctx, credit, result.BuyerName); err != nil {
			s.logger.Warn("failed to send bonus notification",
				zap.Int64("order_id", result.OrderID),
				zap.Int64("user_id", credit.UserID),
				zap.Error(err),
			)
		}
	}
}
