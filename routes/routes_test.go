package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/config"
	orderControllers "github.com/syedzainalii/noosh-tuft/controllers/order"
	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *services.TokenService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "routes.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.ProductReview{},
	))

	tokens := services.NewTokenService(config.Config{
		SecretKey:          "test-secret",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	})

	r := gin.New()
	SetupRoutes(r, Deps{DB: db, Tokens: tokens, Feed: orderControllers.NewFeed()})
	return r, db, tokens
}

func createAccount(t *testing.T, db *gorm.DB, email string, verified bool) *models.User {
	t.Helper()

	user := models.User{
		Email:          email,
		FullName:       "Test User",
		HashedPassword: "x",
		Role:           models.RoleCustomer,
		IsActive:       true,
		IsVerified:     verified,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func perform(t *testing.T, r *gin.Engine, tokens *services.TokenService, userID uint, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	token, err := tokens.AccessToken(userID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestCartRoutesRequireVerifiedEmail(t *testing.T) {
	r, db, tokens := newTestRouter(t)
	verified := createAccount(t, db, "verified@example.com", true)
	unverified := createAccount(t, db, "pending@example.com", false)

	cartRoutes := []struct{ method, path string }{
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/cart"},
		{http.MethodPut, "/api/cart/1"},
		{http.MethodDelete, "/api/cart/1"},
		{http.MethodDelete, "/api/cart"},
	}
	for _, route := range cartRoutes {
		w := perform(t, r, tokens, unverified.ID, route.method, route.path)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s must reject unverified accounts", route.method, route.path)
	}

	w := perform(t, r, tokens, verified.ID, http.MethodGet, "/api/cart")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderRoutesRequireVerifiedEmail(t *testing.T) {
	r, db, tokens := newTestRouter(t)
	verified := createAccount(t, db, "verified@example.com", true)
	unverified := createAccount(t, db, "pending@example.com", false)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/orders/1"},
	} {
		w := perform(t, r, tokens, unverified.ID, route.method, route.path)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s must reject unverified accounts", route.method, route.path)
	}

	w := perform(t, r, tokens, verified.ID, http.MethodGet, "/api/orders")
	assert.Equal(t, http.StatusOK, w.Code)
}
