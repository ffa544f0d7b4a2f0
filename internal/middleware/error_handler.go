package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nychousing-insights/internal/errors"
	"nychousing-insights/pkg/logger"
)

// ErrorHandler maps errors attached by handlers onto the shared response
// envelope. Server failures log at error level, rejected requests at debug.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := errors.MapError(c.Errors.Last().Err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
				c.Request.URL.Path, c.Request.Method, c.ClientIP(), appErr.TechnicalMessage)
		} else {
			logger.GlobalLogger.Debugf("Request rejected: path=%s, status=%d, error=%s",
				c.Request.URL.Path, appErr.HTTPStatus, appErr.TechnicalMessage)
		}

		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
