package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/sunnatill0raimov/luxe/controllers/product"
	"github.com/sunnatill0raimov/luxe/middleware"
)

func SetupProductRoutes(api *gin.RouterGroup, d Deps) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(d.DB))
		products.GET("/:id", productcontroller.GetProduct(d.DB))
		products.GET("/:id/related", productcontroller.GetRelatedProducts(d.DB))

		admin := products.Group("")
		admin.Use(middleware.RequireAuth(d.DB, d.Tokens), middleware.RequireAdmin())
		{
			admin.POST("", productcontroller.CreateProduct(d.DB))
			admin.PUT("/:id", productcontroller.UpdateProduct(d.DB))
			admin.DELETE("/:id", productcontroller.DeleteProduct(d.DB))
		}
	}
}
