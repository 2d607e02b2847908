//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/connector"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/legacy"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	// Station services
	StationService      stations.StationService
	AdminStationService stations.AdminStationService
	WashLaneService     washlanes.WashLaneService

	// Community services
	ReviewService reviews.ReviewService
	UserService   users.UserService

	// Image services
	ImageUploadService   images.ImageUploadService
	ImageMetadataService images.ImageMetadataService
	ImageDownloadService images.ImageDownloadService

	// Infrastructure
	Legacy    *legacy.Store
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests.
// Image services need an Azurite emulator listening on the default port.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	store, err := legacy.NewStore("")
	require.NoError(t, err, "Failed to load legacy stations")

	imageConnector, err := connector.NewAzureImageConnector(ctx, &config.BlobConnectorSettings{
		CloudProvider:    connector.TestCloudProvider,
		ConnectionString: connector.TestConnectionString,
		ContainerName:    connector.TestContainerName,
	}, logger)
	require.NoError(t, err, "Failed to create image connector")

	stationService, err := NewStationService(dbContext.StationRepo, store, logger)
	require.NoError(t, err, "Failed to create StationService")

	adminStationService, err := NewAdminStationService(dbContext.StationRepo, dbContext.ImageRepo, imageConnector, logger)
	require.NoError(t, err, "Failed to create AdminStationService")

	resolver := washlanes.NewResolver(nil, config.DefaultBrandKeywords)
	washLaneService, err := NewWashLaneService(dbContext.StationRepo, store, resolver, logger)
	require.NoError(t, err, "Failed to create WashLaneService")

	reviewService, err := NewReviewService(dbContext.ReviewRepo, dbContext.StationRepo, store, logger)
	require.NoError(t, err, "Failed to create ReviewService")

	userService, err := NewUserService(dbContext.UserRepo, &config.AuthSettings{
		JWTSecret:   "integration-secret-integration-secret",
		AdminEmails: []string{"admin@splashcamper.fr"},
	}, logger)
	require.NoError(t, err, "Failed to create UserService")

	imageUploadService, err := NewImageUploadService(imageConnector, dbContext.ImageRepo, dbContext.StationRepo, store, logger)
	require.NoError(t, err, "Failed to create ImageUploadService")

	imageMetadataService, err := NewImageMetadataService(dbContext.ImageRepo, imageConnector, logger)
	require.NoError(t, err, "Failed to create ImageMetadataService")

	imageDownloadService, err := NewImageDownloadService(dbContext.ImageRepo, imageConnector, logger)
	require.NoError(t, err, "Failed to create ImageDownloadService")

	return &TestServices{
		StationService:       stationService,
		AdminStationService:  adminStationService,
		WashLaneService:      washLaneService,
		ReviewService:        reviewService,
		UserService:          userService,
		ImageUploadService:   imageUploadService,
		ImageMetadataService: imageMetadataService,
		ImageDownloadService: imageDownloadService,
		Legacy:               store,
		DBContext:            dbContext,
	}
}
