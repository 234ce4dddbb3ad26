package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pergunu/internal/auth"
	"pergunu/internal/cloudinary"
	"pergunu/internal/config"
	"pergunu/internal/events"
	"pergunu/internal/store"
)

// Handler carries the shared dependencies of every resource endpoint.
type Handler struct {
	cfg     config.App
	cols    *store.Collections
	file    *store.FileStore
	db      *store.Mongo
	events  *events.Broadcaster
	cloud   *cloudinary.Client // nil when Cloudinary is not configured
	proxy   *http.Client
	started time.Time
}

// New creates the handler set.
func New(cfg config.App, cols *store.Collections, file *store.FileStore, db *store.Mongo, broadcaster *events.Broadcaster, cloud *cloudinary.Client) *Handler {
	return &Handler{
		cfg:     cfg,
		cols:    cols,
		file:    file,
		db:      db,
		events:  broadcaster,
		cloud:   cloud,
		proxy:   &http.Client{Timeout: 30 * time.Second},
		started: time.Now(),
	}
}

// Routes mounts every API route on r.
func (h *Handler) Routes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", h.Health)
	api.GET("/news/events", h.Events)

	api.GET("/news", h.ListNews)
	api.GET("/news/:id", h.GetNews)
	api.POST("/news", h.CreateNews)
	api.PUT("/news/:id", h.UpdateNews)
	api.DELETE("/news/:id", h.DeleteNews)
	api.PUT("/news/:id/feature", h.FeatureNews)

	api.POST("/register", h.LegacyRegister)
	api.POST("/login", h.LegacyLogin)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.GET("/beasiswa", h.ListBeasiswa)
	api.GET("/beasiswa/:id", h.GetBeasiswa)
	api.GET("/beasiswa/kategori/:kategori", h.ListBeasiswaByKategori)
	api.POST("/beasiswa", h.CreateBeasiswa)
	api.PUT("/beasiswa/:id", h.UpdateBeasiswa)
	api.DELETE("/beasiswa/:id", h.DeleteBeasiswa)

	api.POST("/applications", h.CreateApplication)
	api.GET("/applications", h.ListApplications)
	api.GET("/applications/user/:userId", h.ListApplicationsByUser)
	api.PUT("/applications/:id/status", h.UpdateApplicationStatus)
	api.PATCH("/applications/:id", h.PatchApplication)
	api.DELETE("/applications/:id", h.DeleteApplication)
	api.GET("/check-status/:email", h.CheckStatus)

	api.POST("/beasiswa-applications", h.CreateBeasiswaApplication)
	api.GET("/beasiswa-applications", h.ListBeasiswaApplications)
	api.GET("/beasiswa-applications/user/:email", h.ListBeasiswaApplicationsByEmail)
	api.PUT("/beasiswa-applications/:id/status", h.UpdateBeasiswaApplicationStatus)

	api.POST("/upload/image", h.UploadImage)
	api.GET("/proxy-image", h.ProxyImage)
	r.GET("/uploads/images/:filename", h.DeprecatedImage)

	admin := api.Group("/admin", auth.RequireAdmin(h.cfg.JWTSigningKey, h.cfg.JWTIssuer))
	admin.POST("/migrate", h.Migrate)
	admin.GET("/db-status", h.DBStatus)
}

// nowISO is the timestamp format persisted on every record.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (h *Handler) uptime() time.Duration {
	return time.Since(h.started)
}

// baseURL is the public address used when building proxied image URLs.
func (h *Handler) baseURL() string {
	if h.cfg.PublicBaseURL != "" {
		return h.cfg.PublicBaseURL
	}
	return "http://localhost:" + h.cfg.HTTPPort
}
