package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sunnatill0raimov/luxe/config"
	"github.com/sunnatill0raimov/luxe/errs"
	"github.com/sunnatill0raimov/luxe/models"
)

const shopName = "Luxury Fashion Store"

// OrderNotifier relays a persisted order to an external channel.
// Relay failures are advisory: the caller logs them and moves on.
type OrderNotifier interface {
	NotifyOrder(ctx context.Context, order *models.Order) error
}

// TelegramNotifier sends order summaries to a Telegram chat through
// the bot API. It is a no-op when the bot token or chat ID is unset.
type TelegramNotifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
	log      *zap.Logger
}

func NewTelegramNotifier(cfg config.TelegramConfig, log *zap.Logger) *TelegramNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TelegramNotifier{
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		apiBase:  "https://api.telegram.org",
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Enabled reports whether the notifier is configured to send.
func (n *TelegramNotifier) Enabled() bool {
	return n.botToken != "" && n.chatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (n *TelegramNotifier) NotifyOrder(ctx context.Context, order *models.Order) error {
	if !n.Enabled() {
		n.log.Info("telegram notifier disabled, skipping order notification",
			zap.Uint("order_id", order.ID))
		return nil
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    n.chatID,
		Text:      formatOrderMessage(order),
		ParseMode: "HTML",
	})
	if err != nil {
		return errs.Upstream("encode telegram message: %v", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errs.Upstream("build telegram request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Upstream("send telegram message: %v", err)
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errs.Upstream("decode telegram response: %v", err)
	}
	if !result.OK {
		return errs.Upstream("telegram api: %s", result.Description)
	}
	return nil
}

// formatOrderMessage renders the order as the HTML summary posted to
// the shop's Telegram chat.
func formatOrderMessage(order *models.Order) string {
	var b strings.Builder

	b.WriteString("🛍️ <b>New order!</b>\n\n")

	b.WriteString("👤 <b>Customer:</b>\n")
	fmt.Fprintf(&b, "Name: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n", order.Customer.Address)
	if order.Customer.Comments != "" {
		fmt.Fprintf(&b, "Comments: %s\n", order.Customer.Comments)
	}
	b.WriteString("\n🛒 <b>Items:</b>\n")

	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   🔢 Qty: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   💵 Price: $%.2f each\n", item.Price)
		if item.Color != "" {
			fmt.Fprintf(&b, "   🎨 Color: %s\n", item.Color)
		}
		if item.Size != "" {
			fmt.Fprintf(&b, "   📏 Size: %s\n", item.Size)
		}
		b.WriteString("\n")
	}

	b.WriteString("💰 <b>Payment:</b>\n")
	fmt.Fprintf(&b, "Subtotal: $%.2f\n", order.Totals.Subtotal)
	fmt.Fprintf(&b, "Delivery: $%.2f\n", order.Totals.DeliveryFee)
	fmt.Fprintf(&b, "Total: $%.2f\n", order.Totals.Total)
	fmt.Fprintf(&b, "Method: %s\n\n", order.PaymentMethod)

	fmt.Fprintf(&b, "🕐 Placed at: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "🏪 Shop: %s", shopName)

	return b.String()
}
