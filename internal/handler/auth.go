package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pergunu/internal/auth"
	"pergunu/internal/model"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// Register creates an account, rejecting duplicate emails and usernames
// before anything is written.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	users, err := h.cols.Users.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	for _, u := range users {
		if u.Email == req.Email {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Email already registered",
				"message": "This email is already in use. Please use a different email address.",
				"type":    "EMAIL_ALREADY_EXISTS",
			})
			return
		}
	}
	for _, u := range users {
		if u.Username == req.Username {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Username already exists",
				"existingUser": gin.H{
					"id":       u.ID,
					"email":    u.Email,
					"username": u.Username,
					"fullName": u.FullName,
				},
			})
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	user := model.User{
		ID:              uuid.NewString(),
		FullName:        req.FullName,
		Email:           req.Email,
		Username:        req.Username,
		Password:        hash,
		Role:            "user",
		Certificates:    []string{},
		Downloads:       0,
		LastDownload:    nil,
		DownloadHistory: []model.DownloadRecord{},
		ProfileImage:    defaultAvatar(req.FullName),
		CreatedAt:       nowISO(),
	}

	users = append(users, user)
	if err := h.cols.Users.Replace(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user.Sanitized(),
		"message": "User registered successfully",
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates by username or email and opens a 24h session.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, ok := h.findUser(ctx, req.Username)
	if !ok || !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.openSession(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Sanitized(),
		"token":   token.Value,
		"message": "Welcome back, " + user.FullName + "!",
	})
}

type legacyRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

// LegacyRegister is the pre-username registration route kept for older
// clients.
func (h *Handler) LegacyRegister(c *gin.Context) {
	var req legacyRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	users, err := h.cols.Users.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	for _, u := range users {
		if u.Email == req.Email {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := model.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Password:  hash,
		FullName:  req.FullName,
		Role:      "user",
		CreatedAt: nowISO(),
	}
	users = append(users, user)
	if err := h.cols.Users.Replace(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user.Sanitized())
}

type legacyLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LegacyLogin is the email-only login route kept for older clients.
func (h *Handler) LegacyLogin(c *gin.Context) {
	var req legacyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, ok := h.findUser(ctx, req.Email)
	if !ok || !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.openSession(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Sanitized(), "sessionId": token.Value})
}

// findUser locates an account by username or email.
func (h *Handler) findUser(ctx context.Context, identity string) (model.User, bool) {
	users, err := h.cols.Users.All(ctx)
	if err != nil {
		return model.User{}, false
	}
	for _, u := range users {
		if u.Username == identity || u.Email == identity {
			return u, true
		}
	}
	return model.User{}, false
}

// openSession issues a signed token and records the session.
func (h *Handler) openSession(ctx context.Context, user model.User) (auth.Token, error) {
	role := user.Role
	if role == "" {
		role = "user"
	}
	token, err := auth.Issue(user.ID, role, h.cfg.JWTIssuer, h.cfg.JWTSigningKey, h.cfg.SessionTTL)
	if err != nil {
		return auth.Token{}, err
	}

	sessions, err := h.cols.Sessions.All(ctx)
	if err != nil {
		return auth.Token{}, err
	}
	sessions = append(sessions, model.Session{
		ID:        token.ID,
		UserID:    user.ID,
		CreatedAt: token.IssuedAt.Format(time.RFC3339),
		ExpiresAt: token.ExpiresAt.Format(time.RFC3339),
	})
	if err := h.cols.Sessions.Replace(ctx, sessions); err != nil {
		return auth.Token{}, err
	}
	return token, nil
}

func defaultAvatar(fullName string) string {
	name := url.QueryEscape(strings.TrimSpace(fullName))
	return "https://ui-avatars.com/api/?name=" + name + "&background=0F7536&color=fff"
}
