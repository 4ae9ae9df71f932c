package routes

import (
	"github.com/gin-gonic/gin"

	reviewControllers "github.com/syedzainalii/noosh-tuft/controllers/review"
	"github.com/syedzainalii/noosh-tuft/middleware"
)

func SetupReviewRoutes(api *gin.RouterGroup, deps Deps) {
	requireAuth := middleware.RequireAuth(deps.DB, deps.Tokens)

	api.GET("/products/:id/reviews", reviewControllers.GetProductReviews(deps.DB))
	api.GET("/products/:id/reviews/stats", reviewControllers.GetProductRatingStats(deps.DB))
	api.POST("/products/:id/reviews", requireAuth, middleware.RequireVerified(), reviewControllers.CreateReview(deps.DB))

	reviews := api.Group("/reviews", requireAuth)
	{
		reviews.GET("/my-reviews", reviewControllers.GetMyReviews(deps.DB))
		reviews.PUT("/:id", reviewControllers.UpdateReview(deps.DB))
		reviews.DELETE("/:id", reviewControllers.DeleteReview(deps.DB))
	}
}
