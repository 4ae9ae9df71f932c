package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/syedzainalii/noosh-tuft/controllers/cart"
	"github.com/syedzainalii/noosh-tuft/middleware"
)

func SetupCartRoutes(api *gin.RouterGroup, deps Deps) {
	cart := api.Group("/cart",
		middleware.RequireAuth(deps.DB, deps.Tokens),
		middleware.RequireVerified())
	{
		cart.GET("", cartControllers.GetCart(deps.DB))
		cart.POST("", cartControllers.AddToCart(deps.DB))
		cart.PUT("/:id", cartControllers.UpdateCartItem(deps.DB))
		cart.DELETE("/:id", cartControllers.RemoveFromCart(deps.DB))
		cart.DELETE("", cartControllers.ClearCart(deps.DB))
	}
}
