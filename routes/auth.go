package routes

import (
	"github.com/gin-gonic/gin"

	authcontroller "github.com/sunnatill0raimov/luxe/controllers/auth"
	"github.com/sunnatill0raimov/luxe/middleware"
)

func SetupAuthRoutes(api *gin.RouterGroup, d Deps) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authcontroller.Register(d.DB, d.Tokens))
		authGroup.POST("/login", authcontroller.Login(d.Login))

		authGroup.GET("/users",
			middleware.RequireAuth(d.DB, d.Tokens),
			middleware.RequireAdmin(),
			authcontroller.GetAllUsers(d.DB))
	}
}
