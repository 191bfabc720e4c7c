package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transverse/internal/domain"
	"transverse/internal/service"
)

// ProfileHandler handles HTTP requests for the profile editor and settings.
type ProfileHandler struct {
	sessions *service.SessionService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(sessions *service.SessionService) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

// UpdateUserRequest is the HTTP request body for updating identity fields.
type UpdateUserRequest struct {
	Name   string `json:"name,omitempty"`
	NameEn string `json:"name_en,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Photo  string `json:"photo,omitempty"`
}

// ProfileRequest is the HTTP body for the profile editor buffer.
type ProfileRequest struct {
	Name     string `json:"name"`
	NameEn   string `json:"name_en"`
	UniqueID string `json:"unique_id"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Photo    string `json:"photo"`
}

// DarkModeRequest is the HTTP body for the dark mode preference.
type DarkModeRequest struct {
	Enabled bool `json:"enabled"`
}

// UpdateUser handles PUT /v1/profile
func (h *ProfileHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.sessions.UpdateUser(c.Request.Context(), service.UserUpdates{
		Name:   req.Name,
		NameEn: req.NameEn,
		Email:  req.Email,
		Phone:  req.Phone,
		Photo:  req.Photo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// GetUser handles GET /v1/profile
func (h *ProfileHandler) GetUser(c *gin.Context) {
	session := h.sessions.Current()
	if session == nil {
		respondError(c, service.ErrNoActiveSession)
		return
	}
	respondJSON(c, http.StatusOK, toUserResponse(session.User))
}

// SaveProfile handles PUT /v1/profile/editor
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.sessions.SaveProfile(c.Request.Context(), domain.Profile{
		Name:     req.Name,
		NameEn:   req.NameEn,
		UniqueID: req.UniqueID,
		Phone:    req.Phone,
		Bio:      req.Bio,
		Photo:    req.Photo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProfile handles GET /v1/profile/editor
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.sessions.LoadProfile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ProfileRequest{
		Name:     profile.Name,
		NameEn:   profile.NameEn,
		UniqueID: profile.UniqueID,
		Phone:    profile.Phone,
		Bio:      profile.Bio,
		Photo:    profile.Photo,
	})
}

// UsernameAvailable handles GET /v1/profile/username-available?id=...
func (h *ProfileHandler) UsernameAvailable(c *gin.Context) {
	id := c.Query("id")
	respondJSON(c, http.StatusOK, gin.H{
		"id":        id,
		"available": h.sessions.UsernameAvailable(id),
	})
}

// SetDarkMode handles PUT /v1/settings/dark-mode
func (h *ProfileHandler) SetDarkMode(c *gin.Context) {
	var req DarkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	h.sessions.SetDarkMode(c.Request.Context(), req.Enabled)
	c.Status(http.StatusNoContent)
}

// GetSettings handles GET /v1/settings
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	respondJSON(c, http.StatusOK, gin.H{"dark_mode": h.sessions.DarkMode()})
}
