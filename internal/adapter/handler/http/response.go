package http

import (
	"errors"
	"net/http"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Message string              `json:"message" example:"Bike not found"`
	Errors  []domain.FieldIssue `json:"errors,omitempty"`
}

type successResponse struct {
	Message string `json:"message" example:"ok"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

func newValidationResponse(c *gin.Context, verr *domain.ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Message: "Validation failed",
		Errors:  verr.Issues,
	})
}

// bindError answers a request whose body or query could not be bound.
func bindError(c *gin.Context, logger ports.LoggerPort, err error) {
	logger.Warn("Failed to bind request", map[string]interface{}{
		"error": err.Error(),
		"path":  c.FullPath(),
	})

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var issues *domain.ValidationError
		if errors.As(domain.ValidationIssues(verrs), &issues) {
			newValidationResponse(c, issues)
			return
		}
	}
	newErrorResponse(c, http.StatusBadRequest, "Invalid request format")
}

// handleServiceError maps core errors onto HTTP statuses. Anything unknown is
// a 500 whose details only reach the log.
func handleServiceError(c *gin.Context, logger ports.LoggerPort, err error, action string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		newValidationResponse(c, verr)
	case errors.Is(err, domain.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, capitalize(err.Error()))
	case errors.Is(err, domain.ErrConflict):
		newErrorResponse(c, http.StatusConflict, capitalize(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrInvalidCredentials):
		newErrorResponse(c, http.StatusForbidden, "Current password is incorrect")
	case errors.Is(err, domain.ErrForbidden):
		newErrorResponse(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, domain.ErrUploadsNotAvailable):
		newErrorResponse(c, http.StatusServiceUnavailable, "Image uploads are not available")
	default:
		logger.Error("Failed to "+action, map[string]interface{}{
			"error": err.Error(),
			"path":  c.FullPath(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
