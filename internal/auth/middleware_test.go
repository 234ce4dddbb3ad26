package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "pergunu-portal"
	testKey    = "test-signing-key"
)

// adminRouter mounts a mutating handler behind RequireAdmin and reports
// whether it ran.
func adminRouter(executed *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/action", RequireAdmin(testKey, testIssuer), func(c *gin.Context) {
		*executed = true
		c.JSON(http.StatusOK, gin.H{"done": true})
	})
	return r
}

func doAuthed(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/action", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_NoToken(t *testing.T) {
	var executed bool
	w := doAuthed(adminRouter(&executed), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, executed)
}

func TestRequireAdmin_NonAdminTokenNeverReachesHandler(t *testing.T) {
	tok, err := Issue("u1", "user", testIssuer, testKey, time.Hour)
	require.NoError(t, err)

	var executed bool
	w := doAuthed(adminRouter(&executed), tok.Value)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.False(t, executed, "protected handler must not run for non-admin tokens")
	require.JSONEq(t, `{"error":"admin access required"}`, w.Body.String())
}

func TestRequireAdmin_AdminTokenPasses(t *testing.T) {
	tok, err := Issue("a1", "admin", testIssuer, testKey, time.Hour)
	require.NoError(t, err)

	var executed bool
	w := doAuthed(adminRouter(&executed), tok.Value)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, executed)
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	var executed bool
	w := doAuthed(adminRouter(&executed), "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, executed)
}

func TestRequireAuth_SetsClaims(t *testing.T) {
	tok, err := Issue("u1", "user", testIssuer, testKey, time.Hour)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireAuth(testKey, testIssuer), func(c *gin.Context) {
		claims, _ := c.MustGet(ContextKey).(Claims)
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject, "role": claims.Role})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Value)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"sub":"u1","role":"user"}`, w.Body.String())
}
