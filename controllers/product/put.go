package productcontroller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

// PUT /api/products/:id (admin)
func UpdateProduct(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var patch models.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var count int64
		if patch.Slug != nil && *patch.Slug != product.Slug {
			db.Model(&models.Product{}).Where("slug = ?", *patch.Slug).Count(&count)
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{"error": "Product with this slug already exists"})
				return
			}
		}
		if patch.SKU != nil && *patch.SKU != "" && (product.SKU == nil || *patch.SKU != *product.SKU) {
			db.Model(&models.Product{}).Where("sku = ?", *patch.SKU).Count(&count)
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{"error": "Product with this SKU already exists"})
				return
			}
		}
		if patch.StockQuantity != nil && *patch.StockQuantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock_quantity must not be negative"})
			return
		}
		if patch.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *patch.CategoryID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
		}

		oldImageURL := product.ImageURL
		if patch.ImageURL != nil {
			normalized, err := normalizeImage(c.Request.Context(), store, *patch.ImageURL)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.ImageURL = &normalized
		}
		if patch.Images != nil {
			normalized, err := normalizeImageList(c.Request.Context(), store, *patch.Images)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.Images = &normalized
		}

		patch.Apply(&product)

		if err := db.Save(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Product with this slug or SKU already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		// A replaced main image is removed from hosting best-effort.
		if patch.ImageURL != nil && oldImageURL != product.ImageURL && store != nil && store.Owns(oldImageURL) {
			if err := store.Delete(context.Background(), oldImageURL); err != nil {
				log.Printf("⚠️ Failed to delete replaced image %s: %v", oldImageURL, err)
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
