package api

import (
	"context"                    // Ping timeout
	"music_library/internal/dto" // Response envelope
	"net/http"                   // HTTP status codes
	"time"                       // Ping timeout

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// HealthHandler reports whether the database answers a ping
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			logrus.WithError(err).Error("Health check failed")
			c.JSON(http.StatusServiceUnavailable, dto.Envelope{
				Status:  http.StatusServiceUnavailable,
				Message: "Server is unhealthy, database connection failed",
			})
			return
		}
		respond(c, http.StatusOK, nil, "Server is healthy, database connection established")
	}
}
