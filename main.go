package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/syedzainalii/noosh-tuft/config"
	orderControllers "github.com/syedzainalii/noosh-tuft/controllers/order"
	"github.com/syedzainalii/noosh-tuft/database"
	"github.com/syedzainalii/noosh-tuft/jobs"
	"github.com/syedzainalii/noosh-tuft/routes"
	"github.com/syedzainalii/noosh-tuft/services"
)

func main() {
	log.Println("✅ Starting application...")

	_ = godotenv.Load()
	cfg := config.Load()

	db := database.Connect(cfg.DatabaseURL)
	database.Migrate(db)

	rdb := database.ConnectRedis(cfg.RedisURL)

	images, err := services.NewImageStore(cfg)
	if err != nil {
		log.Printf("⚠️ Image hosting disabled: %v", err)
	}

	deps := routes.Deps{
		DB:     db,
		Tokens: services.NewTokenService(cfg),
		Mailer: services.NewMailer(cfg),
		Images: images,
		Redis:  rdb,
		Feed:   orderControllers.NewFeed(),
	}

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	jobs.StartUnverifiedUserCleanup(context.Background(), db)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
