package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "github.com/sunnatill0raimov/luxe/controllers/cart"
	"github.com/sunnatill0raimov/luxe/middleware"
)

func SetupCartRoutes(api *gin.RouterGroup, d Deps) {
	carts := api.Group("/cart")
	carts.Use(middleware.RequireAuth(d.DB, d.Tokens))
	{
		carts.GET("", cartcontroller.GetCart(d.Carts))
		carts.PUT("", cartcontroller.PutCart(d.Carts))
		carts.DELETE("", cartcontroller.ClearCart(d.Carts))
	}
}
