package reviewControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/middleware"
	"github.com/syedzainalii/noosh-tuft/models"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// RatingStats summarizes a product's reviews. Distribution keys are the
// rating values "1" through "5", always all present.
type RatingStats struct {
	TotalReviews  int64            `json:"total_reviews"`
	AverageRating float64          `json:"average_rating"`
	Distribution  map[string]int64 `json:"rating_distribution"`
}

// ComputeRatingStats folds a list of ratings into totals. Average is rounded
// to one decimal place.
func ComputeRatingStats(ratings []int) RatingStats {
	stats := RatingStats{Distribution: map[string]int64{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}}
	sum := 0
	for _, r := range ratings {
		if r < 1 || r > 5 {
			continue
		}
		stats.TotalReviews++
		sum += r
		stats.Distribution[strconv.Itoa(r)]++
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = math.Round(float64(sum)/float64(stats.TotalReviews)*10) / 10
	}
	return stats
}

// hasPurchased reports whether the user has an order in a fulfilled or
// fulfilling state that contains the product. Checked once at review
// creation; the flag is frozen afterwards.
func hasPurchased(db *gorm.DB, userID, productID uint) (bool, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ? AND orders.status IN ?",
			userID, productID,
			[]models.OrderStatus{models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered}).
		Count(&count).Error
	return count > 0, err
}

// POST /api/products/:id/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing int64
		db.Model(&models.ProductReview{}).Where("product_id = ? AND user_id = ?", product.ID, user.ID).Count(&existing)
		if existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this product"})
			return
		}

		verified, err := hasPurchased(db, user.ID, product.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		review := models.ProductReview{
			ProductID:          product.ID,
			UserID:             user.ID,
			Rating:             req.Rating,
			Title:              req.Title,
			Comment:            req.Comment,
			IsVerifiedPurchase: verified,
		}
		if err := db.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this product"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		review.UserName = user.FullName
		c.JSON(http.StatusCreated, review)
	}
}

// GET /api/products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var reviews []models.ProductReview
		if err := db.Where("product_id = ?", product.ID).
			Order("created_at DESC").Offset(skip).Limit(limit).Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		attachUserNames(db, reviews)
		c.JSON(http.StatusOK, reviews)
	}
}

// GET /api/products/:id/reviews/stats
func GetProductRatingStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var ratings []int
		if err := db.Model(&models.ProductReview{}).Where("product_id = ?", product.ID).
			Pluck("rating", &ratings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rating stats"})
			return
		}
		c.JSON(http.StatusOK, ComputeRatingStats(ratings))
	}
}

// GET /api/reviews/my-reviews
func GetMyReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var reviews []models.ProductReview
		if err := db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		for i := range reviews {
			reviews[i].UserName = user.FullName
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// PUT /api/reviews/:id
//
// Only the author may edit. Verified-purchase status never changes here.
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var review models.ProductReview
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		if review.UserID != user.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to edit this review"})
			return
		}

		var patch models.ReviewPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}

		patch.Apply(&review)
		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}

		review.UserName = user.FullName
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /api/reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var review models.ProductReview
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		if review.UserID != user.ID && user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this review"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func attachUserNames(db *gorm.DB, reviews []models.ProductReview) {
	if len(reviews) == 0 {
		return
	}

	ids := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.UserID)
	}

	var users []models.User
	if err := db.Select("id", "full_name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	for i := range reviews {
		reviews[i].UserName = names[reviews[i].UserID]
	}
}
