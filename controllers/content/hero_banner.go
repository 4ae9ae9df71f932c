package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

type CreateHeroBannerRequest struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ImageURL    string `json:"image_url" binding:"required"`
	Button1Text string `json:"button1_text"`
	Button1URL  string `json:"button1_url"`
	Button2Text string `json:"button2_text"`
	Button2URL  string `json:"button2_url"`
	IsActive    *bool  `json:"is_active"`
}

// GET /api/hero-banners
//
// Public listing returns active banners only; admins fetch everything with
// ?all=true.
func GetHeroBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.HeroBanner{})
		if c.Query("all") != "true" {
			query = query.Where("is_active = ?", true)
		}

		var banners []models.HeroBanner
		if err := query.Order("id asc").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// POST /api/hero-banners (admin)
func CreateHeroBanner(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateHeroBannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		imageURL, err := normalizeImage(c.Request.Context(), store, req.ImageURL, "banners")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		banner := models.HeroBanner{
			Title:       req.Title,
			Subtitle:    req.Subtitle,
			ImageURL:    imageURL,
			Button1Text: req.Button1Text,
			Button1URL:  req.Button1URL,
			Button2Text: req.Button2Text,
			Button2URL:  req.Button2URL,
			IsActive:    isActive,
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hero banner"})
			return
		}
		c.JSON(http.StatusCreated, banner)
	}
}

// PUT /api/hero-banners/:id (admin)
func UpdateHeroBanner(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.HeroBanner
		if err := db.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero banner not found"})
			return
		}

		var patch models.HeroBannerPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		oldImage := banner.ImageURL
		if patch.ImageURL != nil {
			normalized, err := normalizeImage(c.Request.Context(), store, *patch.ImageURL, "banners")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.ImageURL = &normalized
		}

		patch.Apply(&banner)
		if err := db.Save(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hero banner"})
			return
		}

		if patch.ImageURL != nil && banner.ImageURL != oldImage {
			dropHostedImage(store, oldImage)
		}
		c.JSON(http.StatusOK, banner)
	}
}

// DELETE /api/hero-banners/:id (admin)
func DeleteHeroBanner(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.HeroBanner
		if err := db.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero banner not found"})
			return
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hero banner"})
			return
		}

		dropHostedImage(store, banner.ImageURL)
		c.Status(http.StatusNoContent)
	}
}
