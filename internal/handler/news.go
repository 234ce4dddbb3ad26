package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pergunu/internal/events"
	"pergunu/internal/model"
)

// ListNews returns all news items.
func (h *Handler) ListNews(c *gin.Context) {
	news, err := h.cols.News.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get news"})
		return
	}
	c.JSON(http.StatusOK, news)
}

// GetNews returns one news item by id.
func (h *Handler) GetNews(c *gin.Context) {
	news, err := h.cols.News.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get news"})
		return
	}
	for _, item := range news {
		if item.ID == c.Param("id") {
			c.JSON(http.StatusOK, item)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
}

type createNewsRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Author   string  `json:"author"`
	Category string  `json:"category"`
	Image    *string `json:"image"`
	Featured bool    `json:"featured"`
}

// CreateNews appends a news item. When the new item is featured, every other
// item loses the flag first so at most one stays featured.
func (h *Handler) CreateNews(c *gin.Context) {
	var req createNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}

	ctx := c.Request.Context()
	news, err := h.cols.News.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}

	now := nowISO()
	item := model.News{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		Category:  req.Category,
		Image:     req.Image,
		Featured:  req.Featured,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.Featured {
		for i := range news {
			news[i].Featured = false
		}
	}

	news = append(news, item)
	if err := h.cols.News.Replace(ctx, news); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news: " + err.Error()})
		return
	}
	h.events.Broadcast(events.NewsAdded, item)
	c.JSON(http.StatusCreated, item)
}

type updateNewsRequest struct {
	Title    *string         `json:"title"`
	Content  *string         `json:"content"`
	Author   *string         `json:"author"`
	Category *string         `json:"category"`
	Image    json.RawMessage `json:"image"` // raw to distinguish absent from null
	Featured *bool           `json:"featured"`
}

// UpdateNews merges the request body over an existing item.
func (h *Handler) UpdateNews(c *gin.Context) {
	var req updateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	news, err := h.cols.News.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}

	idx := -1
	for i := range news {
		if news[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	item := news[idx]
	if req.Title != nil && *req.Title != "" {
		item.Title = *req.Title
	}
	if req.Content != nil && *req.Content != "" {
		item.Content = *req.Content
	}
	if req.Author != nil {
		item.Author = *req.Author
	}
	if req.Category != nil && *req.Category != "" {
		item.Category = *req.Category
	}
	if len(req.Image) > 0 {
		var image *string
		if err := json.Unmarshal(req.Image, &image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image field"})
			return
		}
		item.Image = image
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
		if *req.Featured {
			for i := range news {
				if i != idx {
					news[i].Featured = false
				}
			}
		}
	}
	item.UpdatedAt = nowISO()

	news[idx] = item
	if err := h.cols.News.Replace(ctx, news); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news: " + err.Error()})
		return
	}
	h.events.Broadcast(events.NewsUpdated, item)
	c.JSON(http.StatusOK, item)
}

// DeleteNews removes a news item.
func (h *Handler) DeleteNews(c *gin.Context) {
	ctx := c.Request.Context()
	news, err := h.cols.News.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}

	idx := -1
	for i := range news {
		if news[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	deleted := news[idx]
	news = append(news[:idx], news[idx+1:]...)
	if err := h.cols.News.Replace(ctx, news); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}
	h.events.Broadcast(events.NewsDeleted, gin.H{"id": deleted.ID})
	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully", "deletedNews": deleted})
}

type featureNewsRequest struct {
	Featured bool `json:"featured"`
}

// FeatureNews toggles the featured flag. Setting it clears the flag on every
// other item, keeping the single-featured invariant.
func (h *Handler) FeatureNews(c *gin.Context) {
	var req featureNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	news, err := h.cols.News.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update featured status"})
		return
	}

	idx := -1
	for i := range news {
		if news[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	if req.Featured {
		for i := range news {
			if i != idx {
				news[i].Featured = false
			}
		}
	}
	news[idx].Featured = req.Featured
	news[idx].UpdatedAt = nowISO()

	if err := h.cols.News.Replace(ctx, news); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update featured status"})
		return
	}
	h.events.Broadcast(events.NewsFeatured, news[idx])
	c.JSON(http.StatusOK, news[idx])
}
