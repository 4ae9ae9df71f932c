package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/config"
	"github.com/syedzainalii/noosh-tuft/middleware"
	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCheckoutDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "checkout.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.CartItem{}, &models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedBuyer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Email:          "buyer@example.com",
		FullName:       "Test Buyer",
		HashedPassword: "x",
		Role:           models.RoleCustomer,
		IsActive:       true,
		IsVerified:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, name, slug, price string, stock int, active bool) *models.Product {
	t.Helper()

	product := models.Product{
		Name:          name,
		Slug:          slug,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      active,
	}
	require.NoError(t, db.Create(&product).Error)
	if !active {
		// The column has default:true and gorm omits zero-valued fields
		// with defaults on insert, so persist the false explicitly.
		require.NoError(t, db.Model(&product).UpdateColumn("is_active", false).Error)
	}
	return &product
}

func shippingRequest(items []OrderItemInput) PlaceOrderRequest {
	return PlaceOrderRequest{
		ShippingAddress:    "12 Loom Lane",
		ShippingCity:       "Karachi",
		ShippingPostalCode: "74000",
		ShippingCountry:    "PK",
		CustomerName:       "Test Buyer",
		CustomerEmail:      "buyer@example.com",
		Items:              items,
	}
}

type stubMailer struct {
	sent []string
}

func (m *stubMailer) SendVerificationEmail(to, token string) error  { return nil }
func (m *stubMailer) SendPasswordResetEmail(to, token string) error { return nil }
func (m *stubMailer) SendOrderConfirmation(to, orderNumber string, total decimal.Decimal) error {
	m.sent = append(m.sent, orderNumber)
	return nil
}

func TestPlaceOrderCommitsAtomically(t *testing.T) {
	db := newCheckoutDB(t)
	buyer := seedBuyer(t, db)
	rug := seedProduct(t, db, "Wool rug", "wool-rug", "49.90", 10, true)
	coaster := seedProduct(t, db, "Tufted coaster", "tufted-coaster", "7.25", 3, true)
	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ProductID: rug.ID, Quantity: 2}).Error)

	order, err := PlaceOrder(db, buyer, shippingRequest([]OrderItemInput{
		{ProductID: rug.ID, Quantity: 2},
		{ProductID: coaster.ID, Quantity: 3},
	}))
	require.NoError(t, err)

	assert.Len(t, order.OrderNumber, orderNumberLength)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("121.55")), "got %s", order.TotalAmount)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, rug.ID).Error)
	assert.Equal(t, 8, fresh.StockQuantity)
	fresh = models.Product{}
	require.NoError(t, db.First(&fresh, coaster.ID).Error)
	assert.Equal(t, 0, fresh.StockQuantity)

	var cartCount, itemCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&cartCount)
	assert.Zero(t, cartCount, "a successful order must empty the cart")
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	assert.EqualValues(t, 2, itemCount)
}

func TestPlaceOrderRollsBackWhenDecrementFails(t *testing.T) {
	db := newCheckoutDB(t)
	buyer := seedBuyer(t, db)
	rug := seedProduct(t, db, "Wool rug", "wool-rug", "49.90", 3, true)
	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ProductID: rug.ID, Quantity: 1}).Error)

	// Each line passes validation against the pre-transaction stock of 3,
	// but the second conditional decrement finds only one unit left and
	// must abort the whole transaction.
	_, err := PlaceOrder(db, buyer, shippingRequest([]OrderItemInput{
		{ProductID: rug.ID, Quantity: 2},
		{ProductID: rug.ID, Quantity: 2},
	}))
	require.ErrorIs(t, err, models.ErrInsufficientStock)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, rug.ID).Error)
	assert.Equal(t, 3, fresh.StockQuantity, "failed placement must leave stock untouched")

	var orders, items, cart int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&cart)
	assert.Zero(t, orders)
	assert.Zero(t, items)
	assert.EqualValues(t, 1, cart, "failed placement must leave the cart untouched")
}

func TestPlaceOrderValidationFailureLeavesStateUntouched(t *testing.T) {
	db := newCheckoutDB(t)
	buyer := seedBuyer(t, db)
	retired := seedProduct(t, db, "Retired design", "retired-design", "99.00", 5, false)
	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ProductID: retired.ID, Quantity: 1}).Error)

	_, err := PlaceOrder(db, buyer, shippingRequest([]OrderItemInput{
		{ProductID: retired.ID, Quantity: 1},
	}))
	require.ErrorIs(t, err, models.ErrProductUnavailable)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, retired.ID).Error)
	assert.Equal(t, 5, fresh.StockQuantity)

	var orders, cart int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&cart)
	assert.Zero(t, orders)
	assert.EqualValues(t, 1, cart)
}

func TestPlaceOrderHandlerReturnsHydratedOrder(t *testing.T) {
	db := newCheckoutDB(t)
	buyer := seedBuyer(t, db)
	rug := seedProduct(t, db, "Wool rug", "wool-rug", "49.90", 10, true)

	tokens := services.NewTokenService(config.Config{SecretKey: "test-secret", AccessTokenExpiry: time.Minute})
	mailer := &stubMailer{}
	r := gin.New()
	r.POST("/api/orders", middleware.RequireAuth(db, tokens), PlaceOrderHandler(db, mailer, NewFeed()))

	body, err := json.Marshal(shippingRequest([]OrderItemInput{{ProductID: rug.ID, Quantity: 1}}))
	require.NoError(t, err)
	token, err := tokens.AccessToken(buyer.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.OrderNumber, orderNumberLength)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Wool rug", resp.Items[0].Product.Name, "the response must carry the reloaded product line")
	assert.Equal(t, []string{resp.OrderNumber}, mailer.sent)
}
