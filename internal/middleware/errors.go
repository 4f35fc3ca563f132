package middleware

import (
	"fmt"                           // Panic formatting
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/dto"    // Response envelope

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ErrorHandler is the single boundary that turns errors pushed with c.Error
// into the response envelope. Internal failures are logged and their detail
// is only returned when exposeDetails is set.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		cause := c.Errors.Last().Err
		appErr := apperr.From(cause)

		var detail any
		if appErr.Kind == apperr.KindInternal {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.FullPath(),
				"error":  cause.Error(),
			}).Error("Unhandled error")
			if exposeDetails {
				detail = cause.Error()
			}
		} else if appErr.Detail != nil {
			detail = appErr.Detail
		}

		c.JSON(appErr.StatusCode(), dto.Envelope{
			Status:  appErr.StatusCode(),
			Data:    nil,
			Message: appErr.Message,
			Error:   detail,
		})
	}
}

// Recovery converts a panic into an Internal error for ErrorHandler
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
