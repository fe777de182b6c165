package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// APIPrefix marks routes that answer with JSON instead of HTML.
const APIPrefix = "/api/"

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into an error page, or a JSON error body for API routes. AppErrors
// keep their code and message; unexpected errors are logged and reported as a
// generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
		} else {
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			appErr = apperrors.ErrInternalServer
		}

		if strings.HasPrefix(c.Request.URL.Path, APIPrefix) {
			c.JSON(appErr.StatusCode, gin.H{
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				},
			})
			return
		}
		c.HTML(appErr.StatusCode, "error.html", gin.H{
			"Title":      "Error",
			"Status":     appErr.StatusCode,
			"StatusText": http.StatusText(appErr.StatusCode),
			"Code":       appErr.Code,
			"Message":    appErr.Message,
		})
	}
}

// NotFound renders the 404 response for unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	}
}
