package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/logger"
)

// ErrorHandler translates errors attached to the gin context into the
// standard envelope. AppError codes and messages pass through; anything
// else is logged server-side and returned as a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"path", c.Request.URL.Path,
					"code", appErr.Code,
					"error", appErr.Err.Error())
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Errors)
			return
		}

		logger.Log.Error("unhandled error",
			"path", c.Request.URL.Path,
			"error", err.Error())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
