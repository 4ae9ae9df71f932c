package routes

import (
	"github.com/gin-gonic/gin"

	contentControllers "github.com/syedzainalii/noosh-tuft/controllers/content"
	"github.com/syedzainalii/noosh-tuft/middleware"
)

func SetupContentRoutes(api *gin.RouterGroup, deps Deps) {
	requireAuth := middleware.RequireAuth(deps.DB, deps.Tokens)
	requireAdmin := middleware.RequireAdmin()

	banners := api.Group("/hero-banners")
	{
		banners.GET("", contentControllers.GetHeroBanners(deps.DB))
		banners.POST("", requireAuth, requireAdmin, contentControllers.CreateHeroBanner(deps.DB, deps.Images))
		banners.PUT("/:id", requireAuth, requireAdmin, contentControllers.UpdateHeroBanner(deps.DB, deps.Images))
		banners.DELETE("/:id", requireAuth, requireAdmin, contentControllers.DeleteHeroBanner(deps.DB, deps.Images))
	}

	slides := api.Group("/hero-slides")
	{
		slides.GET("", contentControllers.GetHeroSlides(deps.DB))
		slides.POST("", requireAuth, requireAdmin, contentControllers.CreateHeroSlide(deps.DB, deps.Images))
		slides.PUT("/:id", requireAuth, requireAdmin, contentControllers.UpdateHeroSlide(deps.DB, deps.Images))
		slides.DELETE("/:id", requireAuth, requireAdmin, contentControllers.DeleteHeroSlide(deps.DB, deps.Images))
	}

	packages := api.Group("/packages")
	{
		packages.GET("", contentControllers.GetPackages(deps.DB))
		packages.POST("", requireAuth, requireAdmin, contentControllers.CreatePackage(deps.DB))
		packages.PUT("/:id", requireAuth, requireAdmin, contentControllers.UpdatePackage(deps.DB))
		packages.DELETE("/:id", requireAuth, requireAdmin, contentControllers.DeletePackage(deps.DB))
	}

	about := api.Group("/about")
	{
		about.GET("", contentControllers.GetAboutPage(deps.DB))
		about.POST("", requireAuth, requireAdmin, contentControllers.CreateAboutPage(deps.DB, deps.Images))
		about.PUT("", requireAuth, requireAdmin, contentControllers.UpdateAboutPage(deps.DB, deps.Images))
	}

	photos := api.Group("/handcraft-photos")
	{
		photos.GET("", contentControllers.GetHandcraftPhotos(deps.DB))
		photos.POST("", requireAuth, requireAdmin, contentControllers.CreateHandcraftPhoto(deps.DB, deps.Images))
		photos.PUT("/:id", requireAuth, requireAdmin, contentControllers.UpdateHandcraftPhoto(deps.DB, deps.Images))
		photos.DELETE("/:id", requireAuth, requireAdmin, contentControllers.DeleteHandcraftPhoto(deps.DB, deps.Images))
	}
}
