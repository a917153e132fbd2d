package middleware

import (
	"net/http"

	"github.com/eaglebank/bankingsim/internal/validation"
	"github.com/gin-gonic/gin"
)

type BadRequestErrorResponse struct {
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details"`
}

func ValidateRequest(obj any) []validation.FieldError {
	return validation.Struct(obj)
}

func RespondWithValidationError(c *gin.Context, fieldErrors []validation.FieldError) {
	c.JSON(http.StatusBadRequest, BadRequestErrorResponse{
		Message: "Invalid request data",
		Details: fieldErrors,
	})
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
	})
}
