package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

type CreateHandcraftPhotoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"required"`
	OrderIndex  int    `json:"order_index"`
}

// GET /api/handcraft-photos
func GetHandcraftPhotos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var photos []models.HandcraftPhoto
		if err := db.Order("order_index asc, id asc").Find(&photos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch photos"})
			return
		}
		c.JSON(http.StatusOK, photos)
	}
}

// POST /api/handcraft-photos (admin)
func CreateHandcraftPhoto(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateHandcraftPhotoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		imageURL, err := normalizeImage(c.Request.Context(), store, req.ImageURL, "handcraft")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		photo := models.HandcraftPhoto{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    imageURL,
			OrderIndex:  req.OrderIndex,
		}
		if err := db.Create(&photo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create photo"})
			return
		}
		c.JSON(http.StatusCreated, photo)
	}
}

// PUT /api/handcraft-photos/:id (admin)
func UpdateHandcraftPhoto(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var photo models.HandcraftPhoto
		if err := db.First(&photo, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}

		var patch models.HandcraftPhotoPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		oldImage := photo.ImageURL
		if patch.ImageURL != nil {
			normalized, err := normalizeImage(c.Request.Context(), store, *patch.ImageURL, "handcraft")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.ImageURL = &normalized
		}

		patch.Apply(&photo)
		if err := db.Save(&photo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
			return
		}

		if patch.ImageURL != nil && photo.ImageURL != oldImage {
			dropHostedImage(store, oldImage)
		}
		c.JSON(http.StatusOK, photo)
	}
}

// DELETE /api/handcraft-photos/:id (admin)
func DeleteHandcraftPhoto(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var photo models.HandcraftPhoto
		if err := db.First(&photo, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}

		if err := db.Delete(&photo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
			return
		}

		dropHostedImage(store, photo.ImageURL)
		c.Status(http.StatusNoContent)
	}
}
