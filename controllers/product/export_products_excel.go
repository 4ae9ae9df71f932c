package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
)

// GET /api/products/export-excel (admin)
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Slug", "SKU", "Price", "Stock", "Active", "Featured", "Category"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetString(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetString(strconv.FormatUint(uint64(p.ID), 10))
			row.AddCell().SetString(p.Name)
			row.AddCell().SetString(p.Slug)
			if p.SKU != nil {
				row.AddCell().SetString(*p.SKU)
			} else {
				row.AddCell().SetString("")
			}
			row.AddCell().SetString(p.Price.StringFixed(2))
			row.AddCell().SetString(strconv.Itoa(p.StockQuantity))
			row.AddCell().SetString(strconv.FormatBool(p.IsActive))
			row.AddCell().SetString(strconv.FormatBool(p.IsFeatured))
			if p.Category != nil {
				row.AddCell().SetString(p.Category.Name)
			} else {
				row.AddCell().SetString("")
			}
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
