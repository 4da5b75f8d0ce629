package routes

import (
	"github.com/gin-gonic/gin"

	ordercontroller "github.com/sunnatill0raimov/luxe/controllers/order"
	"github.com/sunnatill0raimov/luxe/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, d Deps) {
	orders := api.Group("/orders")
	{
		// Checkout is public: guests can place orders.
		orders.POST("", ordercontroller.CreateOrder(d.Orders))

		// Public phone lookup, loose match.
		orders.GET("/user/:phone", ordercontroller.GetOrdersByPhone(d.DB))

		orders.GET("/test-telegram", ordercontroller.TestTelegram(d.Notifier))

		authed := orders.Group("")
		authed.Use(middleware.RequireAuth(d.DB, d.Tokens))
		{
			authed.GET("/my-orders", ordercontroller.GetMyOrders(d.DB))

			admin := authed.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/all", ordercontroller.GetAllOrders(d.DB))
				admin.PATCH("/:id/status", ordercontroller.UpdateOrderStatus(d.Orders))
				admin.DELETE("/:id", ordercontroller.DeleteOrder(d.Orders))
			}
		}
	}
}
