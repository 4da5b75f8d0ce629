package cartcontroller

import (
	"github.com/gin-gonic/gin"

	"github.com/sunnatill0raimov/luxe/cart"
	"github.com/sunnatill0raimov/luxe/middleware"
	"github.com/sunnatill0raimov/luxe/web"
)

// GET /api/cart returns the caller's persisted cart lines.
func GetCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFrom(c)
		lines, err := store.Load(cart.UserKey(identity.UserID))
		if err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, lines)
	}
}

// PUT /api/cart replaces the caller's cart with the supplied lines.
// Lines are pushed through the aggregator so duplicates of one
// identity key collapse into a single merged line.
func PutCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lines []cart.Line
		if err := c.ShouldBindJSON(&lines); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		identity := middleware.IdentityFrom(c)
		agg := cart.New(store, cart.UserKey(identity.UserID))
		for _, line := range lines {
			if err := agg.Add(line); err != nil {
				web.Fail(c, err)
				return
			}
		}
		if len(lines) == 0 {
			if err := agg.Clear(); err != nil {
				web.Fail(c, err)
				return
			}
		}
		web.OK(c, agg.Lines())
	}
}

// DELETE /api/cart empties the caller's cart.
func ClearCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFrom(c)
		agg := cart.New(store, cart.UserKey(identity.UserID))
		if err := agg.Clear(); err != nil {
			web.Fail(c, err)
			return
		}
		web.Message(c, 200, "Cart cleared")
	}
}
