package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/syedzainalii/noosh-tuft/controllers/order"
	"github.com/syedzainalii/noosh-tuft/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	requireAuth := middleware.RequireAuth(deps.DB, deps.Tokens)
	requireAdmin := middleware.RequireAdmin()

	requireVerified := middleware.RequireVerified()

	orders := api.Group("/orders", requireAuth)
	{
		// Customer order endpoints are gated on a verified email.
		orders.POST("", requireVerified, orderControllers.PlaceOrderHandler(deps.DB, deps.Mailer, deps.Feed))
		orders.GET("", requireVerified, orderControllers.GetOrders(deps.DB))
		orders.GET("/feed", requireAdmin, deps.Feed.Handle())
		orders.GET("/:id", requireVerified, orderControllers.GetOrderByID(deps.DB))

		orders.PUT("/:id", requireAdmin, orderControllers.UpdateOrder(deps.DB, deps.Feed))
		orders.DELETE("/:id", requireAdmin, orderControllers.DeleteOrder(deps.DB))
	}
}
