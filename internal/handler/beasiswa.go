package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pergunu/internal/events"
	"pergunu/internal/model"
)

// kategoriAll is the pseudo-category that matches every listing.
const kategoriAll = "Semua Program"

// requirementList accepts either a JSON array of strings or a single string,
// which some admin clients still send.
type requirementList []string

func (r *requirementList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*r = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*r = []string{one}
	return nil
}

// ListBeasiswa returns every listing with status recomputed.
func (h *Handler) ListBeasiswa(c *gin.Context) {
	beasiswa, err := h.cols.Beasiswa.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch beasiswa"})
		return
	}
	now := time.Now()
	out := make([]model.Beasiswa, len(beasiswa))
	for i, b := range beasiswa {
		out[i] = b.WithStatus(now)
	}
	c.JSON(http.StatusOK, out)
}

// GetBeasiswa returns one listing by id with status recomputed.
func (h *Handler) GetBeasiswa(c *gin.Context) {
	beasiswa, err := h.cols.Beasiswa.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch beasiswa"})
		return
	}
	for _, b := range beasiswa {
		if b.ID == c.Param("id") {
			c.JSON(http.StatusOK, b.WithStatus(time.Now()))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Beasiswa not found"})
}

// ListBeasiswaByKategori filters listings by category, case-insensitively.
func (h *Handler) ListBeasiswaByKategori(c *gin.Context) {
	beasiswa, err := h.cols.Beasiswa.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch beasiswa"})
		return
	}

	kategori := c.Param("kategori")
	now := time.Now()
	out := []model.Beasiswa{}
	for _, b := range beasiswa {
		if kategori != kategoriAll && !strings.EqualFold(b.Kategori, kategori) {
			continue
		}
		out = append(out, b.WithStatus(now))
	}
	c.JSON(http.StatusOK, out)
}

type createBeasiswaRequest struct {
	Judul        string          `json:"judul" binding:"required"`
	Nominal      string          `json:"nominal" binding:"required"`
	Deadline     string          `json:"deadline" binding:"required"`
	TanggalMulai string          `json:"tanggal_mulai" binding:"required"`
	Deskripsi    string          `json:"deskripsi" binding:"required"`
	Persyaratan  requirementList `json:"persyaratan" binding:"required"`
	Kategori     string          `json:"kategori" binding:"required"`
}

// CreateBeasiswa stores a new listing. Status is derived, never trusted from
// the request.
func (h *Handler) CreateBeasiswa(c *gin.Context) {
	var req createBeasiswaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := nowISO()
	item := model.Beasiswa{
		ID:           uuid.NewString(),
		Judul:        req.Judul,
		Nominal:      req.Nominal,
		Deadline:     req.Deadline,
		TanggalMulai: req.TanggalMulai,
		Status:       model.BeasiswaStatus(req.TanggalMulai, req.Deadline, time.Now()),
		Deskripsi:    req.Deskripsi,
		Persyaratan:  req.Persyaratan,
		Kategori:     req.Kategori,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx := c.Request.Context()
	beasiswa, err := h.cols.Beasiswa.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save beasiswa"})
		return
	}
	beasiswa = append(beasiswa, item)
	if err := h.cols.Beasiswa.Replace(ctx, beasiswa); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save beasiswa"})
		return
	}
	h.events.Broadcast(events.BeasiswaAdded, item)
	c.JSON(http.StatusCreated, item)
}

type updateBeasiswaRequest struct {
	Judul        *string          `json:"judul"`
	Nominal      *string          `json:"nominal"`
	Deadline     *string          `json:"deadline"`
	TanggalMulai *string          `json:"tanggal_mulai"`
	Deskripsi    *string          `json:"deskripsi"`
	Persyaratan  *requirementList `json:"persyaratan"`
	Kategori     *string          `json:"kategori"`
}

// UpdateBeasiswa merges the request body over an existing listing and
// recomputes status from the effective dates.
func (h *Handler) UpdateBeasiswa(c *gin.Context) {
	var req updateBeasiswaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	beasiswa, err := h.cols.Beasiswa.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update beasiswa"})
		return
	}

	idx := -1
	for i := range beasiswa {
		if beasiswa[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Beasiswa not found"})
		return
	}

	item := beasiswa[idx]
	if req.Judul != nil {
		item.Judul = *req.Judul
	}
	if req.Nominal != nil {
		item.Nominal = *req.Nominal
	}
	if req.Deadline != nil {
		item.Deadline = *req.Deadline
	}
	if req.TanggalMulai != nil {
		item.TanggalMulai = *req.TanggalMulai
	}
	if req.Deskripsi != nil {
		item.Deskripsi = *req.Deskripsi
	}
	if req.Persyaratan != nil {
		item.Persyaratan = *req.Persyaratan
	}
	if req.Kategori != nil {
		item.Kategori = *req.Kategori
	}
	item.Status = model.BeasiswaStatus(item.TanggalMulai, item.Deadline, time.Now())
	item.UpdatedAt = nowISO()

	beasiswa[idx] = item
	if err := h.cols.Beasiswa.Replace(ctx, beasiswa); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update beasiswa"})
		return
	}
	h.events.Broadcast(events.BeasiswaUpdated, item)
	c.JSON(http.StatusOK, item)
}

// DeleteBeasiswa removes a listing.
func (h *Handler) DeleteBeasiswa(c *gin.Context) {
	ctx := c.Request.Context()
	beasiswa, err := h.cols.Beasiswa.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete beasiswa"})
		return
	}

	idx := -1
	for i := range beasiswa {
		if beasiswa[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Beasiswa not found"})
		return
	}

	deleted := beasiswa[idx]
	beasiswa = append(beasiswa[:idx], beasiswa[idx+1:]...)
	if err := h.cols.Beasiswa.Replace(ctx, beasiswa); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete beasiswa"})
		return
	}
	h.events.Broadcast(events.BeasiswaDeleted, gin.H{"id": deleted.ID})
	c.Status(http.StatusNoContent)
}
