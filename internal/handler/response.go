package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"transverse/internal/adminauth"
	"transverse/internal/repository"
	"transverse/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingInput),
		errors.Is(err, service.ErrMissingLocation),
		errors.Is(err, service.ErrReservedUsername):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, adminauth.ErrLoginFailed):
		return http.StatusUnauthorized

	// State errors - Conflict
	case errors.Is(err, service.ErrNoActiveRide),
		errors.Is(err, service.ErrNoActiveSession):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
