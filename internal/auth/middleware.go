package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key holding the parsed Claims.
const ContextKey = "claims"

// RequireAuth enforces bearer session tokens signed with HS256.
func RequireAuth(signingKey, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, signingKey, issuer)
		if !ok {
			return
		}
		c.Set(ContextKey, claims)
		c.Next()
	}
}

// RequireAdmin enforces a valid token carrying the admin role. Used for the
// operator-only migration and status routes.
func RequireAdmin(signingKey, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, signingKey, issuer)
		if !ok {
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Set(ContextKey, claims)
		c.Next()
	}
}

// bearerClaims extracts and validates the bearer token. On failure it aborts
// the request with 401 and returns ok=false; the caller must not continue.
func bearerClaims(c *gin.Context, signingKey, issuer string) (Claims, bool) {
	authz := c.GetHeader("Authorization")
	if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return Claims{}, false
	}
	tokenStr := strings.TrimSpace(authz[len("bearer "):])
	claims, err := Parse(tokenStr, signingKey, issuer)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return Claims{}, false
	}
	return claims, true
}
