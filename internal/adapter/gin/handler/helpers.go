package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "taskflow/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondError maps a usecase error to its catalog (status, message) pair.
// Anything outside the catalog becomes a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus(), ErrorResponse{
			Error:   appErr.Kind,
			Message: appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
