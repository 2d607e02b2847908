// cmd/splashcamper-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/splashcamper/splashcamper-api/internal/api/rest/v1"
	"github.com/splashcamper/splashcamper-api/internal/app"
	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/connector"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/legacy"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence/models"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine outside local development
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *v1.Services
	users    users.UserService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	stationRepo, err := persistence.NewGormStationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create station repository: %w", err)
	}
	reviewRepo, err := persistence.NewGormReviewRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create review repository: %w", err)
	}
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	imageRepo, err := persistence.NewGormStationImageRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image repository: %w", err)
	}

	store, err := legacy.NewStore(cfg.Legacy.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load legacy stations: %w", err)
	}
	log.Info("Legacy stations loaded", "count", store.Len())

	imageConnector, err := initializeImageConnector(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize connectors: %w", err)
	}

	services := &v1.Services{Legacy: store}

	if services.Stations, err = app.NewStationService(stationRepo, store, log); err != nil {
		return nil, fmt.Errorf("failed to create station service: %w", err)
	}
	if services.AdminStations, err = app.NewAdminStationService(stationRepo, imageRepo, imageConnector, log); err != nil {
		return nil, fmt.Errorf("failed to create admin station service: %w", err)
	}
	resolver := washlanes.NewResolver(nil, cfg.Legacy.Keywords())
	if services.WashLanes, err = app.NewWashLaneService(stationRepo, store, resolver, log); err != nil {
		return nil, fmt.Errorf("failed to create wash lane service: %w", err)
	}
	if services.Reviews, err = app.NewReviewService(reviewRepo, stationRepo, store, log); err != nil {
		return nil, fmt.Errorf("failed to create review service: %w", err)
	}
	if services.ImageUpload, err = app.NewImageUploadService(imageConnector, imageRepo, stationRepo, store, log); err != nil {
		return nil, fmt.Errorf("failed to create image upload service: %w", err)
	}
	if services.ImageMetadata, err = app.NewImageMetadataService(imageRepo, imageConnector, log); err != nil {
		return nil, fmt.Errorf("failed to create image metadata service: %w", err)
	}
	if services.ImageDownload, err = app.NewImageDownloadService(imageRepo, imageConnector, log); err != nil {
		return nil, fmt.Errorf("failed to create image download service: %w", err)
	}

	userService, err := app.NewUserService(userRepo, &cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:       db,
		services: services,
		users:    userService,
	}, nil
}

// initializeImageConnector sets up the Azure image connector
func initializeImageConnector(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (images.ImageConnector, error) {
	if cfg.BlobConnector.CloudProvider != config.AzureCloudProvider {
		return nil, fmt.Errorf("unsupported cloud provider: %s (only Azure is supported)", cfg.BlobConnector.CloudProvider)
	}

	imageConnector, err := connector.NewAzureImageConnector(ctx, &cfg.BlobConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure image connector: %w", err)
	}

	log.Info("Azure image connector initialized successfully")
	return imageConnector, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	metrics := v1.NewMetrics()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	auth, err := v1.NewAuthMiddleware(&cfg.Auth, deps.users, log)
	if err != nil {
		return fmt.Errorf("failed to create auth middleware: %w", err)
	}
	limiter := v1.NewRateLimiter(cfg.RateLimit, log)

	v1.SetupRoutes(r, deps.services, auth, limiter, log)

	r.GET("/healthz", v1.Health(func(ctx context.Context) error {
		return persistence.Ping(ctx, deps.db)
	}, log))
	r.GET("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Initiating graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// allowsAnyOrigin reports whether the wildcard origin is configured. cors rejects it together with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
