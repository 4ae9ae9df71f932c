package uploadControllers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syedzainalii/noosh-tuft/services"
)

const maxUploadSize = 10 << 20 // 10 MB per image

var errTooLarge = errors.New("image exceeds the 10 MB upload limit")

type UploadImageRequest struct {
	Image  string `json:"image" binding:"required"`
	Folder string `json:"folder"`
}

type UploadImagesRequest struct {
	Images []string `json:"images" binding:"required,min=1,max=10"`
	Folder string   `json:"folder"`
}

type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}

func folderOrDefault(folder string) string {
	if folder == "" {
		return "uploads"
	}
	return folder
}

// POST /api/upload/image (admin)
//
// Accepts either a JSON body with a data-URI image or a multipart form with
// a "file" field.
func UploadImage(store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image hosting is not configured"})
			return
		}

		if _, err := c.FormFile("file"); err == nil {
			dataURI, err := fileToDataURI(c)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			url, err := store.Upload(c.Request.Context(), dataURI, folderOrDefault(c.PostForm("folder")))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"url": url})
			return
		}

		var req UploadImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !services.IsDataURI(req.Image) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be a data URI"})
			return
		}

		url, err := store.Upload(c.Request.Context(), req.Image, folderOrDefault(req.Folder))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}

// POST /api/upload/images (admin)
func UploadImages(store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image hosting is not configured"})
			return
		}

		var req UploadImagesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		urls := make([]string, 0, len(req.Images))
		for _, image := range req.Images {
			if !services.IsDataURI(image) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Every image must be a data URI"})
				return
			}
			url, err := store.Upload(c.Request.Context(), image, folderOrDefault(req.Folder))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			urls = append(urls, url)
		}
		c.JSON(http.StatusCreated, gin.H{"urls": urls})
	}
}

// DELETE /api/upload/image (admin)
func DeleteImage(store services.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image hosting is not configured"})
			return
		}

		var req DeleteImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !store.Owns(req.URL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "URL is not hosted by this service"})
			return
		}

		if err := store.Delete(c.Request.Context(), req.URL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func fileToDataURI(c *gin.Context) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", err
	}
	if file.Size > maxUploadSize {
		return "", errTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize))
	if err != nil {
		return "", err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
