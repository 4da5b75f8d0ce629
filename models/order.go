package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses. The implied flow is pending -> processing ->
	// shipped -> delivered, with cancellation possible before shipping,
	// but transitions are not enforced: admins may set any status as a
	// manual override.
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentCash  PaymentMethod = "cash"
	PaymentClick PaymentMethod = "click"
	PaymentPayme PaymentMethod = "payme"
)

// ParseOrderStatus maps a string to a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(strings.ToLower(s)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentMethod maps a string to a known payment method,
// defaulting to cash when empty.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentCash, nil
	}
	switch PaymentMethod(strings.ToLower(s)) {
	case PaymentCash, PaymentClick, PaymentPayme:
		return PaymentMethod(strings.ToLower(s)), nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// Customer is the checkout form snapshot embedded in every order.
type Customer struct {
	Name     string `gorm:"not null" json:"name"`
	Phone    string `gorm:"not null;index" json:"phone"`
	Address  string `gorm:"not null" json:"address"`
	Comments string `json:"comments"`
}

// Totals is computed once at submission from the supplied cart lines.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Customer      Customer      `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	UserID        *string       `gorm:"index" json:"userId,omitempty"`
	User          *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Totals        Totals        `gorm:"embedded;embeddedPrefix:totals_" json:"totals"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20);default:'cash'" json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// OrderItem is a price snapshot of a cart line at checkout time.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Color     string  `json:"selectedColor"`
	Size      string  `json:"selectedSize"`
}
