package productcontroller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunnatill0raimov/luxe/errs"
	"github.com/sunnatill0raimov/luxe/models"
	"github.com/sunnatill0raimov/luxe/web"
)

const relatedLimit = 10

type productInput struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      string   `json:"category"`
	Images        []string `json:"images"`
	Badge         string   `json:"badge"`
	Rating        float64  `json:"rating"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Description   string   `json:"description"`
}

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, products)
	}
}

// GET /api/products/:id
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			web.Fail(c, errs.Validation("Invalid product ID"))
			return
		}
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Fail(c, errs.NotFound("Product not found"))
				return
			}
			web.Fail(c, err)
			return
		}
		web.OK(c, product)
	}
}

// GET /api/products/:id/related returns same-category siblings,
// excluding the product itself.
func GetRelatedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			web.Fail(c, errs.Validation("Invalid product ID"))
			return
		}
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Fail(c, errs.NotFound("Product not found"))
				return
			}
			web.Fail(c, err)
			return
		}

		var related []models.Product
		if err := db.
			Where("category = ? AND id <> ?", product.Category, product.ID).
			Limit(relatedLimit).
			Find(&related).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, related)
	}
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productInput
		if err := c.ShouldBindJSON(&in); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}
		if in.Name == "" || in.Price <= 0 || in.Category == "" || len(in.Images) == 0 {
			web.Fail(c, errs.Validation("Name, price, category and images are required"))
			return
		}

		product := models.Product{
			Name:          in.Name,
			Price:         in.Price,
			OriginalPrice: in.OriginalPrice,
			Category:      in.Category,
			Images:        in.Images,
			Badge:         models.Badge(in.Badge),
			Rating:        in.Rating,
			Colors:        in.Colors,
			Sizes:         in.Sizes,
			Description:   in.Description,
		}
		if err := db.Create(&product).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.Created(c, product)
	}
}

// PUT /api/products/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			web.Fail(c, errs.Validation("Invalid product ID"))
			return
		}
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Fail(c, errs.NotFound("Product not found"))
				return
			}
			web.Fail(c, err)
			return
		}

		var in productInput
		if err := c.ShouldBindJSON(&in); err != nil {
			web.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		product.Name = in.Name
		product.Price = in.Price
		product.OriginalPrice = in.OriginalPrice
		product.Category = in.Category
		product.Images = in.Images
		product.Badge = models.Badge(in.Badge)
		product.Colors = in.Colors
		product.Sizes = in.Sizes
		product.Description = in.Description

		if err := db.Save(&product).Error; err != nil {
			web.Fail(c, err)
			return
		}
		web.OK(c, product)
	}
}

// DELETE /api/products/:id (admin)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			web.Fail(c, errs.Validation("Invalid product ID"))
			return
		}
		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			web.Fail(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			web.Fail(c, errs.NotFound("Product not found"))
			return
		}
		web.Message(c, 200, "Product deleted")
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}
