package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/JesusPQ15/Transcription-page/internal/api/errors"
)

// ErrorHandler recovers panics into an APIError response
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		apiErr, ok := recovered.(*apierrors.APIError)
		if !ok {
			logger.Error("Internal server error",
				zap.String("error", fmt.Sprint(recovered)),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = apierrors.NewInternalError("Internal server error")
		}
		apiErr.RequestID = requestID

		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as an APIError response. Plain errors become
// internal errors and are recorded on the context for the request log.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr, ok := err.(*apierrors.APIError)
	if !ok {
		_ = c.Error(err)
		apiErr = apierrors.NewInternalError("Internal server error")
	}
	apiErr.RequestID = GetRequestID(c)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
