package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transverse/internal/domain"
	"transverse/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	sessions *service.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest is the HTTP request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // rider, driver or admin
}

// RegisterRequest is the HTTP request body for registering.
type RegisterRequest struct {
	Name   string `json:"name,omitempty"`
	NameEn string `json:"name_en,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role,omitempty"`
}

// SessionResponse is the HTTP representation of a session.
type SessionResponse struct {
	User          UserResponse `json:"user"`
	Authenticated bool         `json:"authenticated"`
	UserType      string       `json:"user_type"`
	IsAdmin       bool         `json:"is_admin"`
}

// UserResponse is the HTTP representation of a user.
type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NameEn     string  `json:"name_en"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Photo      string  `json:"photo,omitempty"`
	Role       string  `json:"role"`
	Points     int     `json:"points"`
	TotalRides int     `json:"total_rides"`
	Rating     float64 `json:"rating"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSessionResponse(session))
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	session, err := h.sessions.Register(c.Request.Context(), service.RegisterRequest{
		Name:   req.Name,
		NameEn: req.NameEn,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toSessionResponse(session))
}

// AdminLogin handles POST /v1/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	creds, err := h.sessions.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"token": creds.Token,
		"id":    creds.ID,
		"name":  creds.Name,
		"email": creds.Email,
		"role":  creds.Role,
	})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// GetSession handles GET /v1/auth/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	session := h.sessions.Current()
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	respondJSON(c, http.StatusOK, toSessionResponse(session))
}

func toSessionResponse(session *domain.Session) SessionResponse {
	return SessionResponse{
		User:          toUserResponse(session.User),
		Authenticated: session.Authenticated,
		UserType:      string(session.UserType),
		IsAdmin:       session.IsAdmin,
	}
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		NameEn:     user.NameEn,
		Email:      user.Email,
		Phone:      user.Phone,
		Photo:      user.Photo,
		Role:       string(user.Role),
		Points:     user.Points,
		TotalRides: user.TotalRides,
		Rating:     user.Rating,
	}
}
