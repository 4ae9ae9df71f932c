package uploadControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFolderOrDefault(t *testing.T) {
	assert.Equal(t, "uploads", folderOrDefault(""))
	assert.Equal(t, "banners", folderOrDefault("banners"))
}

func TestUploadWithoutStoreConfigured(t *testing.T) {
	r := gin.New()
	r.POST("/upload/image", UploadImage(nil))
	r.DELETE("/upload/image", DeleteImage(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/image",
		strings.NewReader(`{"image":"data:image/png;base64,aGVsbG8="}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/upload/image",
		strings.NewReader(`{"url":"https://cdn.example.com/x.png"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
