package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pergunu/internal/events"
	"pergunu/internal/model"
)

type createApplicationRequest struct {
	UserID      string `json:"userId"`
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Position    string `json:"position"`
	School      string `json:"school"`
	SubmittedAt string `json:"submittedAt"`
}

// CreateApplication records a membership application. Status always starts
// out pending.
func (h *Handler) CreateApplication(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := nowISO()
	submitted := req.SubmittedAt
	if submitted == "" {
		submitted = now
	}
	item := model.Application{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		School:      req.School,
		Status:      model.ApplicationPending,
		SubmittedAt: submitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx := c.Request.Context()
	applications, err := h.cols.Applications.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}
	applications = append(applications, item)
	if err := h.cols.Applications.Replace(ctx, applications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListApplications returns every membership application.
func (h *Handler) ListApplications(c *gin.Context) {
	applications, err := h.cols.Applications.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListApplicationsByUser returns the applications belonging to one user.
func (h *Handler) ListApplicationsByUser(c *gin.Context) {
	applications, err := h.cols.Applications.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get applications"})
		return
	}
	userID := c.Param("userId")
	out := []model.Application{}
	for _, a := range applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	c.JSON(http.StatusOK, out)
}

type applicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus sets the status field only.
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	var req applicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	applications, err := h.cols.Applications.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	applications[idx].Status = req.Status
	applications[idx].UpdatedAt = nowISO()
	if err := h.cols.Applications.Replace(ctx, applications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		return
	}
	c.JSON(http.StatusOK, applications[idx])
}

type patchApplicationRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	School   *string `json:"school"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

// PatchApplication is the approve/reject route. Any update through it stamps
// processedAt and is broadcast to listeners.
func (h *Handler) PatchApplication(c *gin.Context) {
	var req patchApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	applications, err := h.cols.Applications.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	item := applications[idx]
	if req.FullName != nil {
		item.FullName = *req.FullName
	}
	if req.Email != nil {
		item.Email = *req.Email
	}
	if req.Phone != nil {
		item.Phone = *req.Phone
	}
	if req.Position != nil {
		item.Position = *req.Position
	}
	if req.School != nil {
		item.School = *req.School
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	processed := nowISO()
	item.ProcessedAt = &processed
	item.UpdatedAt = processed

	applications[idx] = item
	if err := h.cols.Applications.Replace(ctx, applications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}
	h.events.Broadcast(events.ApplicationUpdated, item)
	c.JSON(http.StatusOK, gin.H{"application": item})
}

// DeleteApplication removes an application from the history.
func (h *Handler) DeleteApplication(c *gin.Context) {
	ctx := c.Request.Context()
	applications, err := h.cols.Applications.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	applications = append(applications[:idx], applications[idx+1:]...)
	if err := h.cols.Applications.Replace(ctx, applications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application deleted"})
}

// statusMessage maps an application status to the notice shown to applicants.
func statusMessage(status string) string {
	switch status {
	case model.ApplicationPending:
		return "Pendaftaran Anda sedang diproses oleh admin. Harap tunggu maksimal 2x24 jam untuk konfirmasi."
	case model.ApplicationApproved:
		return "Selamat! Pendaftaran Anda telah disetujui. Silakan cek email untuk username dan password login."
	case model.ApplicationRejected:
		return "Pendaftaran Anda perlu diperbaiki. Silakan cek email untuk detail dan daftar ulang dengan data yang benar."
	default:
		return "Status pendaftaran Anda sedang dalam review."
	}
}

// CheckStatus is the public status-check-by-email route. Email matching is
// case-insensitive.
func (h *Handler) CheckStatus(c *gin.Context) {
	applications, err := h.cols.Applications.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check status"})
		return
	}

	email := c.Param("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}
	email = strings.ToLower(strings.TrimSpace(email))

	for _, a := range applications {
		if strings.ToLower(strings.TrimSpace(a.Email)) != email {
			continue
		}
		position := a.Position
		if position == "" {
			position = "N/A"
		}
		school := a.School
		if school == "" {
			school = "N/A"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": statusMessage(a.Status),
			"application": gin.H{
				"id":          a.ID,
				"fullName":    a.FullName,
				"email":       a.Email,
				"phone":       a.Phone,
				"position":    position,
				"school":      school,
				"status":      a.Status,
				"submittedAt": a.SubmittedAt,
				"processedAt": a.ProcessedAt,
				"notes":       a.Notes,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     false,
		"message":     "Email tidak terdaftar dalam sistem",
		"application": nil,
	})
}
