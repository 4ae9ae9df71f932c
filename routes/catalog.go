package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/syedzainalii/noosh-tuft/controllers/product"
	"github.com/syedzainalii/noosh-tuft/middleware"
)

func SetupCatalogRoutes(api *gin.RouterGroup, deps Deps) {
	requireAuth := middleware.RequireAuth(deps.DB, deps.Tokens)
	requireAdmin := middleware.RequireAdmin()

	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(deps.DB))
		products.GET("/slug/:slug", productcontroller.GetProductBySlug(deps.DB))
		products.GET("/export-excel", requireAuth, requireAdmin, productcontroller.ExportProductsToExcel(deps.DB))
		products.GET("/:id", productcontroller.GetProductByID(deps.DB))

		products.POST("", requireAuth, requireAdmin, productcontroller.CreateProduct(deps.DB, deps.Images))
		products.PUT("/:id", requireAuth, requireAdmin, productcontroller.UpdateProduct(deps.DB, deps.Images))
		products.DELETE("/:id", requireAuth, requireAdmin, productcontroller.DeleteProduct(deps.DB, deps.Images))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", productcontroller.GetCategories(deps.DB))
		categories.GET("/:id", productcontroller.GetCategoryByID(deps.DB))

		categories.POST("", requireAuth, requireAdmin, productcontroller.CreateCategory(deps.DB, deps.Images))
		categories.PUT("/:id", requireAuth, requireAdmin, productcontroller.UpdateCategory(deps.DB, deps.Images))
		categories.DELETE("/:id", requireAuth, requireAdmin, productcontroller.DeleteCategory(deps.DB))
	}
}
