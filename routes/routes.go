package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sunnatill0raimov/luxe/auth"
	"github.com/sunnatill0raimov/luxe/cart"
	"github.com/sunnatill0raimov/luxe/services"
)

// Deps bundles everything the route groups need.
type Deps struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Tokens   *auth.TokenService
	Login    *auth.Verifier
	Orders   *services.OrderService
	Notifier services.OrderNotifier
	Carts    cart.Store
}

// SetupRoutes wires all route groups under the /api prefix.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	SetupProductRoutes(api, d)
	SetupOrderRoutes(api, d)
	SetupAuthRoutes(api, d)
	SetupReviewRoutes(api, d)
	SetupCartRoutes(api, d)
}
