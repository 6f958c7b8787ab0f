package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
	"go.uber.org/zap"
)

const testToken = "123456:test-token"

type telegramServer struct {
	mu       sync.Mutex
	paths    []string
	bodies   []string
	response string
	status   int
}

func (s *telegramServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.paths = append(s.paths, r.URL.Path)
	s.bodies = append(s.bodies, string(body))
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.status)
	_, _ = w.Write([]byte(s.response))
}

func newTestNotifier(t *testing.T, srv *telegramServer) *TelegramNotifier {
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	n, err := NewTelegramNotifier(testToken, zap.NewNop(), bot.WithServerURL(ts.URL))
	require.NoError(t, err)
	return n
}

func testCredit() domain.Credit {
	return domain.Credit{
		UserID:     3,
		TelegramID: 300100,
		Level:      1,
		Rate:       decimal.NewFromInt(20),
		Amount:     decimal.RequireFromString("200"),
		Type:       domain.BonusTypeReferral,
	}
}

func TestTelegramNotifier_NotifyBonus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		srv := &telegramServer{
			status:   http.StatusOK,
			response: `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":300100,"type":"private"}}}`,
		}
		n := newTestNotifier(t, srv)

		err := n.NotifyBonus(ctx, testCredit(), "Oleg")
		require.NoError(t, err)

		require.Len(t, srv.paths, 1)
		assert.True(t, strings.HasSuffix(srv.paths[0], "/sendMessage"))
		assert.Contains(t, srv.bodies[0], "300100")
		assert.Contains(t, srv.bodies[0], "200.00")
		assert.Contains(t, srv.bodies[0], "Oleg")
	})

	t.Run("No telegram id", func(t *testing.T) {
		srv := &telegramServer{status: http.StatusOK, response: `{"ok":true}`}
		n := newTestNotifier(t, srv)

		credit := testCredit()
		credit.TelegramID = 0

		err := n.NotifyBonus(ctx, credit, "Oleg")
		require.NoError(t, err)
		assert.Empty(t, srv.paths)
	})

	t.Run("API error", func(t *testing.T) {
		srv := &telegramServer{
			status:   http.StatusBadRequest,
			response: `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
		}
		n := newTestNotifier(t, srv)

		err := n.NotifyBonus(ctx, testCredit(), "Oleg")
		assert.Error(t, err)
	})
}

func TestBonusMessage(t *testing.T) {
	credit := testCredit()
	credit.Level = 2
	credit.Rate = decimal.NewFromInt(5)
	credit.Amount = decimal.RequireFromString("1.666")

	msg := BonusMessage(credit, "<Ivan>")
	assert.Contains(t, msg, "&lt;Ivan&gt;")
	assert.Contains(t, msg, "2-го уровня")
	assert.Contains(t, msg, "1.67 руб.")
	assert.Contains(t, msg, "5%")

	msg = BonusMessage(credit, "  ")
	assert.Contains(t, msg, unknownBuyer)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.NotifyBonus(context.Background(), testCredit(), "Oleg"))
}
