package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	orderControllers "github.com/syedzainalii/noosh-tuft/controllers/order"
	"github.com/syedzainalii/noosh-tuft/services"
)

// Deps carries the shared collaborators every route group draws from.
type Deps struct {
	DB     *gorm.DB
	Tokens *services.TokenService
	Mailer services.Mailer
	Images services.ImageStore
	Redis  *redis.Client
	Feed   *orderControllers.Feed
}

// SetupRoutes wires every route group under /api.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")

	SetupAuthRoutes(api, deps)
	SetupCatalogRoutes(api, deps)
	SetupCartRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupReviewRoutes(api, deps)
	SetupContentRoutes(api, deps)
	SetupAdminRoutes(api, deps)
}
