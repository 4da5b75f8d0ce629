package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sunnatill0raimov/luxe/config"
	"github.com/sunnatill0raimov/luxe/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID: 42,
		Customer: models.Customer{
			Name:     "Ali",
			Phone:    "+998901112233",
			Address:  "Tashkent",
			Comments: "Call before delivery",
		},
		Items: []models.OrderItem{
			{Name: "Silk Dress", Quantity: 3, Price: 49.99, Color: "red", Size: "M"},
		},
		Totals:        models.Totals{Subtotal: 149.97, DeliveryFee: 5, Total: 154.97},
		PaymentMethod: models.PaymentCash,
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestNotifier(t *testing.T, handler http.HandlerFunc) *TelegramNotifier {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	n := NewTelegramNotifier(config.TelegramConfig{
		BotToken: "bot-token",
		ChatID:   "chat-1",
		Timeout:  time.Second,
	}, zap.NewNop())
	n.apiBase = server.URL
	return n
}

func TestNotifyOrderSendsFormattedMessage(t *testing.T) {
	var got sendMessageRequest
	var path string
	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(sendMessageResponse{OK: true})
	})

	require.NoError(t, n.NotifyOrder(context.Background(), sampleOrder()))

	assert.Equal(t, "/botbot-token/sendMessage", path)
	assert.Equal(t, "chat-1", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)

	assert.Contains(t, got.Text, "New order!")
	assert.Contains(t, got.Text, "Ali")
	assert.Contains(t, got.Text, "+998901112233")
	assert.Contains(t, got.Text, "Tashkent")
	assert.Contains(t, got.Text, "Call before delivery")
	assert.Contains(t, got.Text, "Silk Dress")
	assert.Contains(t, got.Text, "Qty: 3")
	assert.Contains(t, got.Text, "$49.99")
	assert.Contains(t, got.Text, "Color: red")
	assert.Contains(t, got.Text, "Size: M")
	assert.Contains(t, got.Text, "Total: $154.97")
	assert.Contains(t, got.Text, shopName)
}

func TestNotifyOrderReportsAPIError(t *testing.T) {
	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sendMessageResponse{OK: false, Description: "chat not found"})
	})

	err := n.NotifyOrder(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestNotifyOrderReportsTransportError(t *testing.T) {
	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {})
	// Point at a closed server.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	n.apiBase = server.URL

	err := n.NotifyOrder(context.Background(), sampleOrder())
	assert.Error(t, err)
}

func TestNotifyOrderDisabledIsNoOp(t *testing.T) {
	n := NewTelegramNotifier(config.TelegramConfig{}, zap.NewNop())
	assert.False(t, n.Enabled())
	assert.NoError(t, n.NotifyOrder(context.Background(), sampleOrder()))
}
