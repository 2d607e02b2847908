package v1

import (
	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Services groups the application services behind the JSON API
type Services struct {
	Stations      stations.StationService
	AdminStations stations.AdminStationService
	WashLanes     washlanes.WashLaneService
	Legacy        stations.LegacyStore
	Reviews       reviews.ReviewService
	ImageUpload   images.ImageUploadService
	ImageMetadata images.ImageMetadataService
	ImageDownload images.ImageDownloadService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, auth *AuthMiddleware, limiter *RateLimiter, log logger.Logger) {
	api := r.Group(BasePath, auth.Authenticate())

	user := RequireAuth()
	admin := RequireAdmin()
	limit := limiter.Handler()

	// Stations Routes
	stationHandler := NewStationHandler(services.Stations, services.WashLanes, log)
	api.GET("/stations", stationHandler.List)
	api.POST("/stations", user, limit, stationHandler.Submit)
	api.GET("/stations/:id", stationHandler.GetByID)
	api.PUT("/stations/:id", admin, stationHandler.Update)
	api.GET("/stations/:id/wash-lanes", stationHandler.WashLanes)

	// Reviews Routes
	reviewHandler := NewReviewHandler(services.Reviews, log)
	api.GET("/stations/:id/reviews", reviewHandler.ListByStation)
	api.POST("/stations/:id/reviews", user, limit, reviewHandler.Submit)
	api.DELETE("/reviews/:id", admin, reviewHandler.DeleteByID)

	// Images Routes
	imageHandler := NewImageHandler(services.ImageUpload, services.ImageMetadata, services.ImageDownload, log)
	api.GET("/stations/:id/images", imageHandler.ListByStation)
	api.POST("/stations/:id/images", user, limit, imageHandler.Upload)
	api.GET("/images/:id/file", imageHandler.DownloadByID)
	api.DELETE("/images/:id", admin, imageHandler.DeleteByID)

	// Legacy Routes
	legacyHandler := NewLegacyStationHandler(services.Legacy, log)
	api.GET("/legacy-stations", legacyHandler.List)
	api.GET("/legacy-stations/:id", legacyHandler.GetByID)

	// Admin Routes
	adminHandler := NewAdminStationHandler(services.AdminStations, log)
	adminGroup := api.Group("/AdminStation", admin)
	adminGroup.GET("", adminHandler.List)
	adminGroup.PATCH("/:id", adminHandler.SetStatus)
	adminGroup.DELETE("/:id", adminHandler.DeleteByID)

	// Users Routes
	api.GET("/users/me", user, Me)
}
