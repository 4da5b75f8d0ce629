package reviewcontroller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunnatill0raimov/luxe/errs"
	"github.com/sunnatill0raimov/luxe/middleware"
	"github.com/sunnatill0raimov/luxe/models"
	"github.com/sunnatill0raimov/luxe/web"
)

type createReviewRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// GET /api/reviews/:productId
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			web.Fail(c, errs.Validation("Invalid product ID"))
			return
		}
		var reviews []models.Review
		if err := db.
			Where("product_id = ?", productID).
			Preload("User").
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, reviews)
	}
}

// POST /api/reviews (authenticated)
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Fail(c, errs.NotFound("Product not found"))
				return
			}
			web.Fail(c, err)
			return
		}

		identity := middleware.IdentityFrom(c)
		review := models.Review{
			ProductID: req.ProductID,
			UserID:    identity.UserID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			web.Fail(c, err)
			return
		}
		if err := recomputeRating(db, req.ProductID); err != nil {
			web.Fail(c, err)
			return
		}
		web.Created(c, review)
	}
}

// DELETE /api/reviews/:id (admin)
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			web.Fail(c, errs.Validation("Invalid review ID"))
			return
		}
		var review models.Review
		if err := db.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Fail(c, errs.NotFound("Review not found"))
				return
			}
			web.Fail(c, err)
			return
		}
		if err := db.Delete(&review).Error; err != nil {
			web.Fail(c, err)
			return
		}
		if err := recomputeRating(db, review.ProductID); err != nil {
			web.Fail(c, err)
			return
		}
		web.Message(c, 200, "Review deleted")
	}
}

// recomputeRating stores the average review rating on the product,
// zero when the last review is gone.
func recomputeRating(db *gorm.DB, productID uint) error {
	var avg float64
	err := db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return err
	}
	return db.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("rating", avg).Error
}
