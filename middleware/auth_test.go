package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/syedzainalii/noosh-tuft/config"
	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performWithAuthHeader(handler gin.HandlerFunc, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/protected", handler, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejectsBadHeaders(t *testing.T) {
	tokens := services.NewTokenService(config.Config{SecretKey: "test", AccessTokenExpiry: time.Minute})

	// None of these reach the database, so nil is fine here.
	handler := RequireAuth(nil, tokens)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", "sometoken"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithAuthHeader(handler, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func performWithUser(handler gin.HandlerFunc, user *models.User) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/protected", func(c *gin.Context) {
		if user != nil {
			c.Set(userKey, user)
		}
	}, handler, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	return w
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK,
		performWithUser(RequireAdmin(), &models.User{Role: models.RoleAdmin}).Code)
	assert.Equal(t, http.StatusForbidden,
		performWithUser(RequireAdmin(), &models.User{Role: models.RoleCustomer}).Code)
	assert.Equal(t, http.StatusForbidden,
		performWithUser(RequireAdmin(), nil).Code)
}

func TestRequireVerified(t *testing.T) {
	assert.Equal(t, http.StatusOK,
		performWithUser(RequireVerified(), &models.User{IsVerified: true}).Code)
	assert.Equal(t, http.StatusForbidden,
		performWithUser(RequireVerified(), &models.User{IsVerified: false}).Code)
	assert.Equal(t, http.StatusForbidden,
		performWithUser(RequireVerified(), nil).Code)
}

func TestCurrentUserOutsideAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}

func TestRateLimitWithoutRedisIsNoop(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()
	r.POST("/login", RateLimit(nil, "login", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
