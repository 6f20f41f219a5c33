package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/KodingMaster1/Molant/internal/repositories"
	"github.com/KodingMaster1/Molant/internal/service"
)

// ErrorResponse defines the structure of an error response
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error represents an API error
type Error struct {
	Message    string
	StatusCode int
	Code       string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Common API errors
var (
	ErrInvalidRequest = &Error{Message: "Invalid request", StatusCode: http.StatusBadRequest, Code: "INVALID_REQUEST"}
	ErrNotFound       = &Error{Message: "Resource not found", StatusCode: http.StatusNotFound, Code: "NOT_FOUND"}
	ErrInternalServer = &Error{Message: "Internal server error", StatusCode: http.StatusInternalServerError, Code: "INTERNAL_ERROR"}
)

// NewError creates a new API error with custom details
func NewError(message string, statusCode int, code string) *Error {
	return &Error{
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
	}
}

// WriteError maps an error onto the HTTP error taxonomy and writes it
func WriteError(c *gin.Context, err error) {
	var apiError *Error
	if errors.As(err, &apiError) {
		c.JSON(apiError.StatusCode, ErrorResponse{Message: apiError.Message, Code: apiError.Code})
		return
	}

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Resource not found", Code: "NOT_FOUND"})
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), Code: "VALIDATION_ERROR"})
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), Code: "VALIDATION_ERROR"})
	case errors.Is(err, service.ErrCreditLimitExceeded):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: err.Error(), Code: "CREDIT_LIMIT_EXCEEDED"})
	default:
		log.Error().Err(err).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error", Code: "INTERNAL_ERROR"})
	}
}
