package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

type CreateHeroSlideRequest struct {
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url" binding:"required"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	OrderIndex int    `json:"order_index"`
	IsActive   *bool  `json:"is_active"`
}

// GET /api/hero-slides
func GetHeroSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.HeroSlide{})
		if c.Query("all") != "true" {
			query = query.Where("is_active = ?", true)
		}

		var slides []models.HeroSlide
		if err := query.Order("order_index asc, id asc").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// POST /api/hero-slides (admin)
func CreateHeroSlide(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateHeroSlideRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		imageURL, err := normalizeImage(c.Request.Context(), store, req.ImageURL, "slides")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		slide := models.HeroSlide{
			Title:      req.Title,
			Subtitle:   req.Subtitle,
			ImageURL:   imageURL,
			ButtonText: req.ButtonText,
			ButtonLink: req.ButtonLink,
			OrderIndex: req.OrderIndex,
			IsActive:   isActive,
		}
		if err := db.Create(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hero slide"})
			return
		}
		c.JSON(http.StatusCreated, slide)
	}
}

// PUT /api/hero-slides/:id (admin)
func UpdateHeroSlide(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slide models.HeroSlide
		if err := db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}

		var patch models.HeroSlidePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		oldImage := slide.ImageURL
		if patch.ImageURL != nil {
			normalized, err := normalizeImage(c.Request.Context(), store, *patch.ImageURL, "slides")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.ImageURL = &normalized
		}

		patch.Apply(&slide)
		if err := db.Save(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hero slide"})
			return
		}

		if patch.ImageURL != nil && slide.ImageURL != oldImage {
			dropHostedImage(store, oldImage)
		}
		c.JSON(http.StatusOK, slide)
	}
}

// DELETE /api/hero-slides/:id (admin)
func DeleteHeroSlide(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slide models.HeroSlide
		if err := db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}

		if err := db.Delete(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hero slide"})
			return
		}

		dropHostedImage(store, slide.ImageURL)
		c.Status(http.StatusNoContent)
	}
}
