package routes

import (
	"github.com/gin-gonic/gin"

	reviewcontroller "github.com/sunnatill0raimov/luxe/controllers/review"
	"github.com/sunnatill0raimov/luxe/middleware"
)

func SetupReviewRoutes(api *gin.RouterGroup, d Deps) {
	reviews := api.Group("/reviews")
	{
		reviews.GET("/:productId", reviewcontroller.GetReviews(d.DB))

		reviews.POST("",
			middleware.RequireAuth(d.DB, d.Tokens),
			reviewcontroller.CreateReview(d.DB))

		reviews.DELETE("/:id",
			middleware.RequireAuth(d.DB, d.Tokens),
			middleware.RequireAdmin(),
			reviewcontroller.DeleteReview(d.DB))
	}
}
