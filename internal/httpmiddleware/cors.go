package httpmiddleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// CORS enforces the environment-driven origin allowlist. Same-origin
// requests (no Origin header) always pass; localhost passes outside
// production.
func CORS(allowedOrigins []string, frontendURL string, production bool) gin.HandlerFunc {
	allowList := make(map[string]bool, len(allowedOrigins)+1)
	for _, origin := range allowedOrigins {
		allowList[origin] = true
	}
	if frontendURL != "" {
		allowList[frontendURL] = true
	}

	return func(c *gin.Context) {
		// same-origin and non-browser requests carry no Origin; CORS headers
		// would be meaningless and "*" clashes with allow-credentials
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if !originAllowed(origin, allowList, production) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "origin not allowed"})
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, Expires, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(origin string, allowList map[string]bool, production bool) bool {
	if allowList[origin] {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if !production && (u.Hostname() == "localhost" || u.Hostname() == "127.0.0.1") {
		return true
	}
	return false
}
