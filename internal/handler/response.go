package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridefare/internal/middleware"
	"ridefare/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	c.Set(middleware.FareErrorKey, err)
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error(), Kind: string(service.KindOf(err))})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidDistance),
		errors.Is(err, service.ErrInvalidRideType),
		errors.Is(err, service.ErrInvalidInputFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
