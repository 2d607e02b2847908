//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence/models"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	StationRepo stations.StationRepository
	ReviewRepo  reviews.ReviewRepository
	UserRepo    users.UserRepository
	ImageRepo   images.ImageRepository
}

// SetupTestDB opens a migrated database of the given type and registers its cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{Type: config.SqliteDbType}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, models.AutoMigrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	stationRepo, err := NewGormStationRepository(db, log)
	require.NoError(t, err)
	reviewRepo, err := NewGormReviewRepository(db, log)
	require.NoError(t, err)
	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)
	imageRepo, err := NewGormStationImageRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:          db,
		StationRepo: stationRepo,
		ReviewRepo:  reviewRepo,
		UserRepo:    userRepo,
		ImageRepo:   imageRepo,
	}
}

// CreateTestUser builds a valid user with the given email
func CreateTestUser(t *testing.T, email string) *users.User {
	t.Helper()

	return &users.User{
		ID:              uuid.NewString(),
		Email:           email,
		Name:            "Test User",
		Role:            users.RoleUser,
		Provider:        "google",
		DateTimeCreated: time.Now(),
	}
}

// CreateTestStation builds a valid pending station with services and two lanes
func CreateTestStation(t *testing.T, name, city, postalCode string) *stations.Station {
	t.Helper()

	return &stations.Station{
		ID:              uuid.NewString(),
		Name:            name,
		Type:            stations.TypeWash,
		Status:          stations.StatusPending,
		City:            city,
		PostalCode:      postalCode,
		Latitude:        45.0,
		Longitude:       5.0,
		DateTimeCreated: time.Now(),
		Services:        &stations.Service{DrinkingWater: true, HighPressure: true, PaymentMethods: []string{"card"}},
		WashLanes: []stations.WashLane{
			{LaneNumber: 1, HasHighPressure: true},
			{LaneNumber: 2, HasPortique: true},
		},
	}
}

// CreateTestReview builds a valid review
func CreateTestReview(t *testing.T, stationID, userID string, rating int) *reviews.Review {
	t.Helper()

	return &reviews.Review{
		ID:              uuid.NewString(),
		StationID:       stationID,
		UserID:          userID,
		Rating:          rating,
		Comment:         "Bonne station",
		DateTimeCreated: time.Now(),
	}
}
