package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/syedzainalii/noosh-tuft/controllers/admin"
	uploadControllers "github.com/syedzainalii/noosh-tuft/controllers/upload"
	"github.com/syedzainalii/noosh-tuft/middleware"
)

func SetupAdminRoutes(api *gin.RouterGroup, deps Deps) {
	admin := api.Group("/admin",
		middleware.RequireAuth(deps.DB, deps.Tokens),
		middleware.RequireAdmin())
	{
		admin.GET("/stats", adminControllers.GetDashboardStats(deps.DB))
		admin.GET("/low-stock", adminControllers.GetLowStockProducts(deps.DB))
	}

	upload := api.Group("/upload",
		middleware.RequireAuth(deps.DB, deps.Tokens),
		middleware.RequireAdmin())
	{
		upload.POST("/image", uploadControllers.UploadImage(deps.Images))
		upload.POST("/images", uploadControllers.UploadImages(deps.Images))
		upload.DELETE("/image", uploadControllers.DeleteImage(deps.Images))
	}
}
