package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pergunu/internal/events"
	"pergunu/internal/model"
)

type createBeasiswaApplicationRequest struct {
	BeasiswaID    string `json:"beasiswaId" binding:"required"`
	BeasiswaTitle string `json:"beasiswaTitle" binding:"required"`
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Education     string `json:"education"`
	GPA           string `json:"gpa"`
	Motivation    string `json:"motivation"`
	SubmittedAt   string `json:"submittedAt"`
}

// CreateBeasiswaApplication records a scholarship application and notifies
// stream listeners.
func (h *Handler) CreateBeasiswaApplication(c *gin.Context) {
	var req createBeasiswaApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := nowISO()
	submitted := req.SubmittedAt
	if submitted == "" {
		submitted = now
	}
	item := model.BeasiswaApplication{
		ID:            uuid.NewString(),
		BeasiswaID:    req.BeasiswaID,
		BeasiswaTitle: req.BeasiswaTitle,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Education:     req.Education,
		GPA:           req.GPA,
		Motivation:    req.Motivation,
		Status:        model.ApplicationPending,
		SubmittedAt:   submitted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx := c.Request.Context()
	applications, err := h.cols.BeasiswaApplications.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save beasiswa application"})
		return
	}
	applications = append(applications, item)
	if err := h.cols.BeasiswaApplications.Replace(ctx, applications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save beasiswa application"})
		return
	}

	h.events.Broadcast(events.BeasiswaApplicationAdded, item)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Pendaftaran beasiswa berhasil dikirim",
		"application": item,
	})
}

// ListBeasiswaApplications returns every scholarship application.
func (h *Handler) ListBeasiswaApplications(c *gin.Context) {
	applications, err := h.cols.BeasiswaApplications.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch beasiswa applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListBeasiswaApplicationsByEmail returns the scholarship applications
// submitted under one email address.
func (h *Handler) ListBeasiswaApplicationsByEmail(c *gin.Context) {
	applications, err := h.cols.BeasiswaApplications.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user applications"})
		return
	}
	email := c.Param("email")
	out := []model.BeasiswaApplication{}
	for _, a := range applications {
		if a.Email == email {
			out = append(out, a)
		}
	}
	c.JSON(http.StatusOK, out)
}

type beasiswaApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// UpdateBeasiswaApplicationStatus sets status and notes, stamps processedAt,
// and notifies stream listeners.
func (h *Handler) UpdateBeasiswaApplicationStatus(c *gin.Context) {
	var req beasiswaApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	applications, err := h.cols.BeasiswaApplications.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update beasiswa application status"})
		return
	}

	idx := -1
	for i := range applications {
		if applications[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Beasiswa application not found"})
		return
	}

	processed := nowISO()
	applications[idx].Status = req.Status
	applications[idx].Notes = req.Notes
	applications[idx].ProcessedAt = &processed
	applications[idx].UpdatedAt = processed

	if err := h.cols.BeasiswaApplications.Replace(ctx, applications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update beasiswa application status"})
		return
	}
	h.events.Broadcast(events.BeasiswaApplicationUpdated, applications[idx])
	c.JSON(http.StatusOK, applications[idx])
}
