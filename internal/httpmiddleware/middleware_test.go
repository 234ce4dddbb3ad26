package httpmiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doGet(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_AllowlistedOrigin(t *testing.T) {
	r := newRouter(CORS([]string{"https://pergunu.example"}, "", true))

	w := doGet(r, "https://pergunu.example")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "https://pergunu.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOriginInProduction(t *testing.T) {
	r := newRouter(CORS([]string{"https://pergunu.example"}, "", true))

	w := doGet(r, "https://evil.example")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORS_LocalhostOutsideProduction(t *testing.T) {
	r := newRouter(CORS(nil, "", false))

	w := doGet(r, "http://localhost:5173")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_FrontendURLAllowed(t *testing.T) {
	r := newRouter(CORS(nil, "https://app.pergunu.example", true))

	w := doGet(r, "https://app.pergunu.example")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_NoOriginPassesWithoutCORSHeaders(t *testing.T) {
	r := newRouter(CORS(nil, "", true))

	w := doGet(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	r := newRouter(CORS([]string{"https://pergunu.example"}, "", true))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://pergunu.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestTokenBucket_ExhaustsAndRefuses(t *testing.T) {
	l := NewTokenBucket(3, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow(ctx, "1.2.3.4"))
	}
	require.False(t, l.Allow(ctx, "1.2.3.4"))

	// independent keys are unaffected
	require.True(t, l.Allow(ctx, "5.6.7.8"))
}

func TestRateLimit_Returns429(t *testing.T) {
	r := newRouter(RateLimit(NewTokenBucket(1, 1)))

	w := doGet(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doGet(r, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}
