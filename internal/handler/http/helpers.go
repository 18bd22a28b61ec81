package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/handler/http/dto"
	"github.com/bereketsol/inkwell/internal/handler/http/middleware"
	"github.com/bereketsol/inkwell/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler maps usecase and repository errors to HTTP statuses.
// Transient storage failures fall through to 500: the write either fully
// happened or fully did not.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contract.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrInvalidReactionType),
		errors.Is(err, usecase.ErrNestedReply):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, contract.ErrDuplicate):
		ErrorHandler(c, http.StatusConflict, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	}
}

// ActingUserID extracts the authenticated user id placed in the context by
// the auth middleware.
func ActingUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}
