package authcontroller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sunnatill0raimov/luxe/auth"
	"github.com/sunnatill0raimov/luxe/errs"
	"github.com/sunnatill0raimov/luxe/models"
	"github.com/sunnatill0raimov/luxe/web"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		var existing models.User
		err := db.Where("phone = ?", req.Phone).First(&existing).Error
		if err == nil {
			web.Fail(c, errs.Duplicate("This phone number is already registered"))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			web.Fail(c, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			web.Fail(c, err)
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Username: req.Username,
			Phone:    req.Phone,
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			web.Fail(c, err)
			return
		}

		token, err := tokens.Issue(user.ID, user.IsAdmin)
		if err != nil {
			web.Fail(c, err)
			return
		}
		web.Created(c, auth.Session{
			UserID:   user.ID,
			Username: user.Username,
			Phone:    user.Phone,
			IsAdmin:  user.IsAdmin,
			Token:    token,
		})
	}
}

// POST /api/auth/login
func Login(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		session, err := verifier.Verify(c.Request.Context(), req.Phone, req.Password)
		if err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, session)
	}
}

// GET /api/auth/users (admin)
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, users)
	}
}
