package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/logger"
)

// ErrorHandler converts errors attached to the gin context into JSON
// responses. Application errors keep their type and status; anything else is
// logged and collapsed into a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			status := appError.GetHTTPStatus()

			log.Infow("Request failed",
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"status", status,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"request_id", c.GetString(RequestIDKey),
			)

			response := gin.H{
				"type":    string(appError.Type),
				"message": appError.Message,
			}
			if appError.Detail != "" {
				response["detail"] = appError.Detail
			}
			if len(appError.Fields) > 0 {
				response["errors"] = appError.Fields
			}

			c.JSON(status, response)
			return
		}

		if c.Errors.Last().Type == gin.ErrorTypeBind {
			c.JSON(http.StatusBadRequest, gin.H{
				"type":    string(apperrors.ValidationError),
				"message": "Failed to bind request",
			})
			return
		}

		log.Errorw("Unexpected server error",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"type":    string(apperrors.ServerError),
			"message": "Internal Server Error",
		})
	}
}
