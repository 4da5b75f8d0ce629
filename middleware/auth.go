package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunnatill0raimov/luxe/auth"
	"github.com/sunnatill0raimov/luxe/models"
)

const identityKey = "identity"

// RequireAuth validates the bearer token and attaches the resolved
// identity to the context. Registered users are re-read from the
// database so deleted accounts lose access immediately; the admin
// shortcut identity is synthetic and skips the lookup.
func RequireAuth(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Not authorized, no token",
			})
			return
		}

		identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Not authorized, token failed",
			})
			return
		}

		if identity.UserID != auth.AdminUserID {
			var user models.User
			if err := db.First(&user, "id = ?", identity.UserID).Error; err != nil {
				status := http.StatusInternalServerError
				msg := "Server error"
				if errors.Is(err, gorm.ErrRecordNotFound) {
					status = http.StatusUnauthorized
					msg = "Not authorized, token failed"
				}
				c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
				return
			}
			identity.Username = user.Username
			identity.IsAdmin = user.IsAdmin
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil || !identity.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Not authorized as an admin",
			})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity set by RequireAuth, or nil.
func IdentityFrom(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}
