package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
)

type CreatePackageRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Duration    string          `json:"duration"`
	Features    string          `json:"features"`
	IsPopular   bool            `json:"is_popular"`
	IsActive    *bool           `json:"is_active"`
	OrderIndex  int             `json:"order_index"`
	ButtonText  string          `json:"button_text"`
	ButtonLink  string          `json:"button_link"`
	Icon        string          `json:"icon"`
	ColorScheme string          `json:"color_scheme"`
}

// GET /api/packages
func GetPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Package{})
		if c.Query("all") != "true" {
			query = query.Where("is_active = ?", true)
		}

		var packages []models.Package
		if err := query.Order("order_index asc, id asc").Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

// POST /api/packages (admin)
func CreatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePackageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}
		buttonText := req.ButtonText
		if buttonText == "" {
			buttonText = "Get Started"
		}

		pkg := models.Package{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Duration:    req.Duration,
			Features:    req.Features,
			IsPopular:   req.IsPopular,
			IsActive:    isActive,
			OrderIndex:  req.OrderIndex,
			ButtonText:  buttonText,
			ButtonLink:  req.ButtonLink,
			Icon:        req.Icon,
			ColorScheme: req.ColorScheme,
		}
		if err := db.Create(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

// PUT /api/packages/:id (admin)
func UpdatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}

		var patch models.PackagePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		patch.Apply(&pkg)
		if err := db.Save(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

// DELETE /api/packages/:id (admin)
func DeletePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}

		if err := db.Delete(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
