package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

type CreateAboutPageRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
}

// GET /api/about
//
// The about page is a singleton row.
func GetAboutPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page models.AboutPage
		if err := db.First(&page).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "About page not found"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// POST /api/about (admin). Fails once a page exists; use PUT afterwards.
func CreateAboutPage(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		db.Model(&models.AboutPage{}).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "About page already exists, use PUT to update it"})
			return
		}

		var req CreateAboutPageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		imageURL, err := normalizeImage(c.Request.Context(), store, req.ImageURL, "about")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		page := models.AboutPage{
			Title:    req.Title,
			Subtitle: req.Subtitle,
			Content:  req.Content,
			ImageURL: imageURL,
		}
		if err := db.Create(&page).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create about page"})
			return
		}
		c.JSON(http.StatusCreated, page)
	}
}

// PUT /api/about (admin)
func UpdateAboutPage(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page models.AboutPage
		if err := db.First(&page).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "About page not found"})
			return
		}

		var patch models.AboutPagePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		oldImage := page.ImageURL
		if patch.ImageURL != nil {
			normalized, err := normalizeImage(c.Request.Context(), store, *patch.ImageURL, "about")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.ImageURL = &normalized
		}

		patch.Apply(&page)
		if err := db.Save(&page).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about page"})
			return
		}

		if patch.ImageURL != nil && page.ImageURL != oldImage {
			dropHostedImage(store, oldImage)
		}
		c.JSON(http.StatusOK, page)
	}
}
