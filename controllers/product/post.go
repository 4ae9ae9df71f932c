package productcontroller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Slug           string           `json:"slug" binding:"required"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price" binding:"required"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"`
	CostPerItem    *decimal.Decimal `json:"cost_per_item"`
	StockQuantity  int              `json:"stock_quantity" binding:"min=0"`
	SKU            *string          `json:"sku"`
	ImageURL       string           `json:"image_url"`
	Images         string           `json:"images"`
	IsActive       *bool            `json:"is_active"`
	IsFeatured     bool             `json:"is_featured"`
	CategoryID     *uint            `json:"category_id"`
}

// normalizeImage uploads inline data-URI images through the hosting
// collaborator; already-hosted URLs pass through untouched.
func normalizeImage(ctx context.Context, store services.ImageStore, image string) (string, error) {
	if image == "" || !services.IsDataURI(image) {
		return image, nil
	}
	if store == nil {
		return "", errors.New("image hosting is not configured")
	}
	return store.Upload(ctx, image, "products")
}

// normalizeImageList does the same for the JSON-encoded gallery field.
func normalizeImageList(ctx context.Context, store services.ImageStore, imagesJSON string) (string, error) {
	if imagesJSON == "" {
		return "", nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(imagesJSON), &urls); err != nil {
		return "", errors.New("images must be a JSON array of strings")
	}
	for i, u := range urls {
		normalized, err := normalizeImage(ctx, store, u)
		if err != nil {
			return "", err
		}
		urls[i] = normalized
	}
	out, err := json.Marshal(urls)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB, store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var count int64
		db.Model(&models.Product{}).Where("slug = ?", req.Slug).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product with this slug already exists"})
			return
		}
		if req.SKU != nil && *req.SKU != "" {
			db.Model(&models.Product{}).Where("sku = ?", *req.SKU).Count(&count)
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{"error": "Product with this SKU already exists"})
				return
			}
		}

		if req.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
		}

		imageURL, err := normalizeImage(c.Request.Context(), store, req.ImageURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		images, err := normalizeImageList(c.Request.Context(), store, req.Images)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		product := models.Product{
			Name:           req.Name,
			Slug:           req.Slug,
			Description:    req.Description,
			Price:          req.Price,
			CompareAtPrice: req.CompareAtPrice,
			CostPerItem:    req.CostPerItem,
			StockQuantity:  req.StockQuantity,
			SKU:            req.SKU,
			ImageURL:       imageURL,
			Images:         images,
			IsActive:       isActive,
			IsFeatured:     req.IsFeatured,
			CategoryID:     req.CategoryID,
		}

		if err := db.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Product with this slug or SKU already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
