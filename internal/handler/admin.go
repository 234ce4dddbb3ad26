package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pergunu/internal/store"
)

// Migrate copies the flat-file snapshot into the document database.
func (h *Handler) Migrate(c *gin.Context) {
	results, err := store.Migrate(c.Request.Context(), h.file, h.db)
	if err != nil {
		if errors.Is(err, store.ErrMongoUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "MongoDB not connected",
				"message": "Cannot migrate data without a MongoDB connection. MONGODB_URI may be missing or invalid.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Migration failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Data migrated successfully from the flat file to MongoDB",
		"migrated": results,
	})
}

// DBStatus reports which backend is live and per-collection record counts.
func (h *Handler) DBStatus(c *gin.Context) {
	connected := h.db.Database() != nil
	c.JSON(http.StatusOK, gin.H{
		"useMongoDB":       connected,
		"isConnected":      connected,
		"mongodbUriExists": h.db.Configured(),
		"collections":      h.cols.Counts(c.Request.Context()),
	})
}
