package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the error body shape for every failure: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// Common constructors covering the error taxonomy.
func ValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", message)
}

func AuthenticationError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func AuthorizationError(message string) *AppError {
	return NewAppError(http.StatusForbidden, "FORBIDDEN", message)
}

func NotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", message)
}

func ConflictError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "CONFLICT", message)
}

func InternalError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

func RespondError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
		return
	}
	c.JSON(appErr.Status, MessageResponse{Message: appErr.Message})
}

func RespondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}
