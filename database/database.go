package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
)

// Connect opens the Postgres connection. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey instead of raw
// driver errors.
func Connect(databaseURL string) *gorm.DB {
	dsn := databaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ProductReview{},
		&models.HeroBanner{},
		&models.HeroSlide{},
		&models.Package{},
		&models.AboutPage{},
		&models.HandcraftPhoto{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
}
