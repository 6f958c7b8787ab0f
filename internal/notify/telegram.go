// Package notify отправляет пользователям уведомления о начисленных бонусах
package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/vitawin/referral-engine/internal/domain"
	"go.uber.org/zap"
)

// unknownBuyer подставляется, если у покупателя не заполнено имя
const unknownBuyer = "Неизвестный пользователь"

// TelegramNotifier реализует domain.Notifier через Telegram Bot API
type TelegramNotifier struct {
	bot    *bot.Bot
	logger *zap.Logger
}

// NewTelegramNotifier создает новый TelegramNotifier.
// Бот используется только для отправки сообщений и не получает обновлений.
func NewTelegramNotifier(token string, logger *zap.Logger, opts ...bot.Option) (*TelegramNotifier, error) {
	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("notify: failed to create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    b,
		logger: logger,
	}, nil
}

// NotifyBonus отправляет получателю бонуса сообщение о начислении
func (n *TelegramNotifier) NotifyBonus(ctx context.Context, credit domain.Credit, buyerName string) error {
	if credit.TelegramID == 0 {
		return nil
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    credit.TelegramID,
		Text:      BonusMessage(credit, buyerName),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("notify: failed to send bonus message to user %d: %w", credit.UserID, err)
	}

	n.logger.Debug("bonus notification sent",
		zap.Int64("user_id", credit.UserID),
		zap.Int("level", credit.Level),
	)
	return nil
}

// BonusMessage формирует текст уведомления в HTML-разметке Telegram
func BonusMessage(credit domain.Credit, buyerName string) string {
	buyerName = strings.TrimSpace(buyerName)
	if buyerName == "" {
		buyerName = unknownBuyer
	}

	var sb strings.Builder
	sb.WriteString("💰 <b>Начислен реферальный бонус!</b>\n\n")
	fmt.Fprintf(&sb, "👤 От: %s (реферал %d-го уровня)\n", html.EscapeString(buyerName), credit.Level)
	fmt.Fprintf(&sb, "💵 Сумма: <b>%s руб.</b>\n", credit.Amount.StringFixed(2))
	fmt.Fprintf(&sb, "📈 Ставка: %s%%", credit.Rate.String())
	return sb.String()
}

// Noop не отправляет уведомлений. Используется, когда токен бота не задан.
type Noop struct{}

// NotifyBonus ничего не делает
func (Noop) NotifyBonus(context.Context, domain.Credit, string) error {
	return nil
}

var (
	_ domain.Notifier = (*TelegramNotifier)(nil)
	_ domain.Notifier = Noop{}
)
