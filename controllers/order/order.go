package ordercontroller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunnatill0raimov/luxe/cart"
	"github.com/sunnatill0raimov/luxe/errs"
	"github.com/sunnatill0raimov/luxe/middleware"
	"github.com/sunnatill0raimov/luxe/models"
	"github.com/sunnatill0raimov/luxe/services"
	"github.com/sunnatill0raimov/luxe/web"
)

type createOrderRequest struct {
	Customer      models.Customer `json:"customer"`
	Items         []cart.Line     `json:"items"`
	Totals        *models.Totals  `json:"totals"`
	PaymentMethod string          `json:"paymentMethod"`
	UserID        *string         `json:"userId"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/orders
func CreateOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		var deliveryFee float64
		if req.Totals != nil {
			deliveryFee = req.Totals.DeliveryFee
		}

		order, err := svc.Submit(c.Request.Context(), services.SubmitOrderInput{
			Customer:      req.Customer,
			Lines:         req.Items,
			DeliveryFee:   deliveryFee,
			PaymentMethod: req.PaymentMethod,
			UserID:        req.UserID,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}
		web.Created(c, gin.H{"orderId": order.ID, "status": order.Status})
	}
}

// GET /api/orders/my-orders (authenticated)
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFrom(c)
		var orders []models.Order
		if err := db.
			Where("user_id = ?", identity.UserID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, orders)
	}
}

// GET /api/orders/all (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, orders)
	}
}

// GET /api/orders/user/:phone looks orders up by a loose phone match:
// whitespace is stripped and the rest matched as a substring.
func GetOrdersByPhone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := strings.ReplaceAll(c.Param("phone"), " ", "")
		if phone == "" {
			web.Fail(c, errs.Validation("Phone number is required"))
			return
		}

		var orders []models.Order
		if err := db.
			Where("customer_phone LIKE ?", "%"+phone+"%").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, orders)
	}
}

// PATCH /api/orders/:id/status (admin)
func UpdateOrderStatus(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			web.Fail(c, errs.Validation("Invalid order ID"))
			return
		}
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		order, err := svc.UpdateStatus(c.Request.Context(), uint(id), req.Status)
		if err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, order)
	}
}

// DELETE /api/orders/:id (admin)
func DeleteOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			web.Fail(c, errs.Validation("Invalid order ID"))
			return
		}
		if err := svc.Delete(c.Request.Context(), uint(id)); err != nil {
			web.Fail(c, err)
			return
		}
		web.Message(c, 200, "Order deleted")
	}
}

// GET /api/orders/test-telegram sends a canned order through the relay
// so the bot wiring can be checked without placing a real order.
func TestTelegram(notifier services.OrderNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		order := &models.Order{
			Customer: models.Customer{
				Name:     "Test User",
				Phone:    "+998901234567",
				Address:  "Test Address",
				Comments: "Test Order",
			},
			Items: []models.OrderItem{
				{Name: "Test Product", Quantity: 1, Price: 100},
			},
			Totals:        models.Totals{Subtotal: 100, DeliveryFee: 5, Total: 105},
			PaymentMethod: models.PaymentCash,
		}
		if err := notifier.NotifyOrder(c.Request.Context(), order); err != nil {
			web.Fail(c, err)
			return
		}
		web.Message(c, 200, "Telegram test successful! Check your bot.")
	}
}
