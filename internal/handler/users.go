package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pergunu/internal/auth"
	"pergunu/internal/model"
)

// ListUsers returns all users with passwords stripped.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.cols.Users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
		return
	}
	out := make([]model.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	c.JSON(http.StatusOK, out)
}

// GetUser returns one user by id, password stripped.
func (h *Handler) GetUser(c *gin.Context) {
	users, err := h.cols.Users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}
	for _, u := range users {
		if u.ID == c.Param("id") {
			c.JSON(http.StatusOK, u.Sanitized())
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
}

type updateUserRequest struct {
	FullName        *string                 `json:"fullName"`
	Email           *string                 `json:"email"`
	Username        *string                 `json:"username"`
	Password        *string                 `json:"password"`
	Role            *string                 `json:"role"`
	ProfileImage    *string                 `json:"profileImage"`
	Downloads       *int                    `json:"downloads"`
	LastDownload    *string                 `json:"lastDownload"`
	Certificates    *[]string               `json:"certificates"`
	DownloadHistory *[]model.DownloadRecord `json:"downloadHistory"`
}

// UpdateUser merges the request body over an existing user. A supplied
// password is re-hashed before it is stored.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	users, err := h.cols.Users.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	idx := -1
	for i := range users {
		if users[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user := users[idx]
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.Downloads != nil {
		user.Downloads = *req.Downloads
	}
	if req.LastDownload != nil {
		user.LastDownload = req.LastDownload
	}
	if req.Certificates != nil {
		user.Certificates = *req.Certificates
	}
	if req.DownloadHistory != nil {
		user.DownloadHistory = *req.DownloadHistory
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		user.Password = hash
	}
	user.UpdatedAt = nowISO()

	users[idx] = user
	if err := h.cols.Users.Replace(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}

// DeleteUser removes a user.
func (h *Handler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.cols.Users.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	idx := -1
	for i := range users {
		if users[i].ID == c.Param("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	deleted := users[idx]
	users = append(users[:idx], users[idx+1:]...)
	if err := h.cols.Users.Replace(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully", "deletedUser": deleted.Sanitized()})
}
