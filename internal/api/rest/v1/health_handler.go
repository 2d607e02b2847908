package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker func(ctx context.Context) error

// Health answers 200 while check succeeds and 503 otherwise
func Health(check HealthChecker, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := check(checkCtx); err != nil {
			log.Error("health check failed", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "database unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
	}
}
