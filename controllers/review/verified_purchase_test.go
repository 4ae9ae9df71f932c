package reviewControllers

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
)

func newReviewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "reviews.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{},
		&models.OrderItem{}, &models.ProductReview{},
	))
	return db
}

func TestHasPurchased(t *testing.T) {
	db := newReviewDB(t)

	user := models.User{Email: "buyer@example.com", FullName: "Test Buyer", HashedPassword: "x", IsActive: true, IsVerified: true}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Wool rug", Slug: "wool-rug", Price: decimal.RequireFromString("49.90"), StockQuantity: 5, IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	purchased, err := hasPurchased(db, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, purchased, "no orders at all")

	order := models.Order{
		OrderNumber:        "TESTORDER1",
		UserID:             user.ID,
		Status:             models.OrderStatusPending,
		TotalAmount:        product.Price,
		ShippingAddress:    "12 Loom Lane",
		ShippingCity:       "Karachi",
		ShippingPostalCode: "74000",
		ShippingCountry:    "PK",
		CustomerName:       user.FullName,
		CustomerEmail:      user.Email,
		Items:              []models.OrderItem{{ProductID: product.ID, Quantity: 1, Price: product.Price}},
	}
	require.NoError(t, db.Create(&order).Error)

	purchased, err = hasPurchased(db, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, purchased, "a pending order does not count as a purchase")

	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("status", models.OrderStatusDelivered).Error)

	purchased, err = hasPurchased(db, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, purchased)

	other := models.User{Email: "other@example.com", FullName: "Someone Else", HashedPassword: "x", IsActive: true, IsVerified: true}
	require.NoError(t, db.Create(&other).Error)
	purchased, err = hasPurchased(db, other.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, purchased, "another user's purchase must not count")
}

func TestHasPurchasedPropagatesQueryErrors(t *testing.T) {
	db := newReviewDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	_, err := hasPurchased(db, 1, 1)
	assert.Error(t, err)
}
