package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/JesusPQ15/Transcription-page/internal/api/errors"
)

// ValidateQuery binds and validates query parameters into req
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		details := make(map[string]string)

		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrs {
				field := strings.ToLower(fieldError.Field())
				switch fieldError.Tag() {
				case "min":
					details[field] = "is too small"
				case "max":
					details[field] = "is too large"
				default:
					details[field] = "is invalid"
				}
			}
		} else {
			details["query"] = "invalid query parameters"
		}

		return apierrors.NewValidationError("Invalid query parameters", details)
	}
	return nil
}
