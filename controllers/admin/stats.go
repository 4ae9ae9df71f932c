package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
)

const lowStockThreshold = 10

type DashboardStats struct {
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalProducts  int64           `json:"total_products"`
	TotalCustomers int64           `json:"total_customers"`
	PendingOrders  int64           `json:"pending_orders"`
	LowStockCount  int64           `json:"low_stock_count"`
}

// GET /api/admin/stats
//
// Revenue counts every order that is not cancelled.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats DashboardStats

		if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		var revenue decimal.Decimal
		row := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total_amount), 0)").Row()
		if err := row.Scan(&revenue); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		stats.TotalRevenue = revenue

		db.Model(&models.Product{}).Count(&stats.TotalProducts)
		db.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&stats.TotalCustomers)
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders)
		db.Model(&models.Product{}).Where("stock_quantity < ? AND is_active = ?", lowStockThreshold, true).Count(&stats.LowStockCount)

		c.JSON(http.StatusOK, stats)
	}
}

// GET /api/admin/low-stock
func GetLowStockProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("stock_quantity < ? AND is_active = ?", lowStockThreshold, true).
			Order("stock_quantity asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
