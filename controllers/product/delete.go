package productcontroller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

// DELETE /api/products/:id (admin)
func DeleteProduct(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		// Hosted images are cleaned up best-effort after the row is gone.
		if store != nil {
			urls := []string{product.ImageURL}
			if product.Images != "" {
				var gallery []string
				if err := json.Unmarshal([]byte(product.Images), &gallery); err == nil {
					urls = append(urls, gallery...)
				}
			}
			for _, u := range urls {
				if u == "" || !store.Owns(u) {
					continue
				}
				if err := store.Delete(context.Background(), u); err != nil {
					log.Printf("⚠️ Failed to delete image %s: %v", u, err)
				}
			}
		}

		c.Status(http.StatusNoContent)
	}
}
