package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api-playground/internal/api/errors"
)

// ErrorHandler recovers panics and turns them into APIError responses
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("Internal server error")
		default:
			logger.Error("Unknown panic occurred",
				zap.String("recovered", fmt.Sprint(recovered)),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError is a helper function for handlers to return errors
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if apiErr, ok := err.(*errors.APIError); ok {
		if apiErr == nil {
			return
		}
		apiErr.RequestID = c.GetString(RequestIDKey)
		_ = c.Error(apiErr)
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	// If it's not an APIError, panic so the error middleware can handle it
	panic(err)
}
