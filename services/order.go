package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sunnatill0raimov/luxe/cart"
	"github.com/sunnatill0raimov/luxe/errs"
	"github.com/sunnatill0raimov/luxe/models"
)

// OrderService owns the order lifecycle: checkout submission, admin
// status changes, and deletion.
type OrderService struct {
	db       *gorm.DB
	notifier OrderNotifier
	log      *zap.Logger
}

func NewOrderService(db *gorm.DB, notifier OrderNotifier, log *zap.Logger) *OrderService {
	return &OrderService{db: db, notifier: notifier, log: log}
}

// SubmitOrderInput carries the checkout form. Line prices are taken
// as supplied by the client; only the arithmetic is recomputed.
type SubmitOrderInput struct {
	Customer      models.Customer
	Lines         []cart.Line
	DeliveryFee   float64
	PaymentMethod string
	UserID        *string
}

// Submit validates the checkout, persists the order with status
// pending, and relays a summary to the notification channel. The relay
// is best effort: once the order row is committed the caller gets a
// success even if the notification fails.
func (s *OrderService) Submit(ctx context.Context, in SubmitOrderInput) (*models.Order, error) {
	if strings.TrimSpace(in.Customer.Name) == "" ||
		strings.TrimSpace(in.Customer.Phone) == "" ||
		strings.TrimSpace(in.Customer.Address) == "" {
		return nil, errs.Validation("Customer name, phone and address are required")
	}
	if len(in.Lines) == 0 {
		return nil, errs.Validation("Cart is empty")
	}
	method, err := models.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, errs.Validation("Invalid payment method")
	}

	items := make([]models.OrderItem, 0, len(in.Lines))
	for _, l := range in.Lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			Quantity:  qty,
			Price:     float64(l.Price),
			Color:     l.SelectedColor,
			Size:      l.SelectedSize,
		})
	}

	subtotal := cart.Total(in.Lines)
	order := &models.Order{
		Customer: in.Customer,
		UserID:   in.UserID,
		Items:    items,
		Totals: models.Totals{
			Subtotal:    subtotal,
			DeliveryFee: in.DeliveryFee,
			Total:       subtotal + in.DeliveryFee,
		},
		Status:        models.OrderStatusPending,
		PaymentMethod: method,
	}

	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	s.log.Info("order saved", zap.Uint("order_id", order.ID),
		zap.Float64("total", order.Totals.Total))

	// The order is already durable; a failed relay must not undo it.
	if err := s.notifier.NotifyOrder(ctx, order); err != nil {
		s.log.Warn("order notification failed",
			zap.Uint("order_id", order.ID), zap.Error(err))
	}

	return order, nil
}

// UpdateStatus sets any known status on the order. Transitions are
// deliberately unrestricted so admins can correct mistakes by hand.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, errs.Validation("Invalid status")
	}

	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Order not found")
		}
		return nil, err
	}

	order.Status = parsed
	if err := s.db.WithContext(ctx).Model(&order).Update("status", parsed).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes the order and its line snapshots.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("Order not found")
		}
		return err
	}
	return s.db.WithContext(ctx).Select(clause.Associations).Delete(&order).Error
}
