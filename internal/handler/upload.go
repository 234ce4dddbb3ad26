package handler

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// maxImageBytes caps uploaded image size at 10MB.
const maxImageBytes = 10 << 20

// UploadImage accepts a multipart image, pushes it to Cloudinary and returns
// a proxied URL so clients never fetch Cloudinary directly.
func (h *Handler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds the 10MB limit"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	filename := uploadFilename()
	result, err := h.cloud.Upload(data, filename, "images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image: " + err.Error()})
		return
	}

	proxied := h.baseURL() + "/api/proxy-image?url=" + url.QueryEscape(result.SecureURL)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"filename":    filename,
		"url":         proxied,
		"originalUrl": result.SecureURL,
	})
}

// ProxyImage streams a remote image through the API so browsers only ever
// talk to this origin.
func (h *Handler) ProxyImage(c *gin.Context) {
	imageURL := c.Query("url")
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter required"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, imageURL, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image URL"})
		return
	}
	resp, err := h.proxy.Do(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to proxy image"})
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	c.Header("Cache-Control", "public, max-age=31536000")
	c.DataFromReader(resp.StatusCode, resp.ContentLength, contentType, resp.Body, nil)
}

// DeprecatedImage answers old local upload URLs that predate Cloudinary.
func (h *Handler) DeprecatedImage(c *gin.Context) {
	c.JSON(http.StatusGone, gin.H{
		"error":    "This endpoint is deprecated",
		"message":  "Images are now served from Cloudinary. Please update your image URLs.",
		"filename": c.Param("filename"),
	})
}

func uploadFilename() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffix := make([]byte, 12)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), suffix)
}
