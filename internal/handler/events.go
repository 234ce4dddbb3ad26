package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pergunu/internal/events"
)

// Events is the live update stream. The connection stays open until the
// client goes away or its buffer overflows, receiving one SSE frame per
// broadcast mutation.
func (h *Handler) Events(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ch, cancel := h.events.Subscribe()
	defer cancel()

	hello, _ := json.Marshal(gin.H{"message": "Connected to real-time updates"})
	c.Writer.Write(events.Frame(events.Connected, hello))
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case frame, ok := <-ch:
			if !ok {
				return false
			}
			w.Write(frame)
			return true
		case <-clientGone:
			return false
		}
	})
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   nowISO(),
		"uptime":      int64(h.uptime().Seconds()),
		"environment": h.cfg.Env,
	})
}
