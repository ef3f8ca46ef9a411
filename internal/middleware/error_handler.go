package middleware

import (
	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"
	"homeinsight-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error as
// {"error": <user message>}. Technical details are logged only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := errors.MapError(c.Errors.Last().Err)
		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, code=%s, error=%s",
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			c.GetString(RequestIDKey),
			appErr.Code,
			appErr.TechnicalMessage)

		c.JSON(appErr.HTTPStatus, models.ErrorResponse{Error: appErr.UserMessage})
	}
}
