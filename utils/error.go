package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is the body of every JSON error the console returns. Error is shown
// to the admin; Details carries the underlying cause for logs and debugging.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler turns a panic in a later handler into a 500 APIError.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			zap.L().Error("Recovered from panic",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("panic", fmt.Sprint(rec)))
			JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "")
		}()
		c.Next()
	}
}

// JSONError aborts the request with an APIError. Server-side failures log at
// error level, rejected requests at debug.
func JSONError(c *gin.Context, status int, message string, details string) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
		zap.String("details", details),
	}
	if status >= http.StatusInternalServerError {
		zap.L().Error(message, fields...)
	} else {
		zap.L().Debug(message, fields...)
	}
	c.AbortWithStatusJSON(status, APIError{Error: message, Details: details})
}
