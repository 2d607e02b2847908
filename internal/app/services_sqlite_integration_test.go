//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationLifecycle_Sqlite(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)

	user, err := services.UserService.EnsureUser(ctx, &users.Identity{Subject: "g-1", Email: "camille@example.fr", Name: "Camille", Provider: "google"})
	require.NoError(t, err)

	submitted, err := services.StationService.Submit(ctx, &stations.Station{
		Name:       "Aire de la Loire",
		Type:       stations.TypeBoth,
		City:       "Nantes",
		PostalCode: "44000",
		Latitude:   47.21,
		Longitude:  -1.55,
		WashLanes:  []stations.WashLane{{LaneNumber: 1, HasHighPressure: true}},
	}, user.ID)
	require.NoError(t, err)
	assert.Equal(t, stations.StatusPending, submitted.Status)

	public, err := services.StationService.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = services.ReviewService.Submit(ctx, &reviews.Review{StationID: submitted.ID, UserID: user.ID, Rating: 4})
	assert.ErrorIs(t, err, stations.ErrNotFound)

	activated, err := services.AdminStationService.SetStatus(ctx, submitted.ID, stations.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, stations.StatusActive, activated.Status)

	public, err = services.StationService.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, public, 1)

	_, err = services.ReviewService.Submit(ctx, &reviews.Review{StationID: submitted.ID, UserID: user.ID, Rating: 4, Comment: "Propre"})
	require.NoError(t, err)
	_, err = services.ReviewService.Submit(ctx, &reviews.Review{StationID: submitted.ID, UserID: user.ID, Rating: 1})
	assert.ErrorIs(t, err, reviews.ErrDuplicate)

	summary, err := services.ReviewService.Summary(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 4.0, summary.AverageRating)

	res, err := services.WashLaneService.Resolve(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, washlanes.SourceWashLanes, res.Source)

	require.NoError(t, services.AdminStationService.DeleteByID(ctx, submitted.ID))
	_, err = services.StationService.GetByID(ctx, submitted.ID)
	assert.ErrorIs(t, err, stations.ErrNotFound)
}

func TestImportLegacy_Sqlite(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)
	logger := testutil.SetupTestLogger(t)

	created, err := ImportLegacy(ctx, services.DBContext.StationRepo, services.Legacy, logger)
	require.NoError(t, err)
	assert.Equal(t, services.Legacy.Len(), created)

	again, err := ImportLegacy(ctx, services.DBContext.StationRepo, services.Legacy, logger)
	require.NoError(t, err)
	assert.Zero(t, again)

	merged, err := services.StationService.GetByID(ctx, "station_1")
	require.NoError(t, err)
	assert.Equal(t, "station_1", merged.ID)
	assert.Equal(t, stations.StatusActive, merged.Status)
}

func TestWashLanes_LegacyOverlay_Sqlite(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)

	before, err := services.WashLaneService.Resolve(ctx, "station_3")
	require.NoError(t, err)
	assert.Equal(t, washlanes.SourceOverride, before.Source)

	edit, err := services.StationService.GetByID(ctx, "station_3")
	require.NoError(t, err)
	edit.WashLanes = []stations.WashLane{{LaneNumber: 1}, {LaneNumber: 2}, {LaneNumber: 3}, {LaneNumber: 4}, {LaneNumber: 5, HasTallPortique: true}}
	_, err = services.StationService.Update(ctx, edit)
	require.NoError(t, err)

	merged, err := services.StationService.GetByID(ctx, "station_3")
	require.NoError(t, err)
	require.Len(t, merged.WashLanes, 5)

	after, err := services.WashLaneService.Resolve(ctx, "station_3")
	require.NoError(t, err)
	assert.Equal(t, washlanes.SourceWashLanes, after.Source)
	assert.Equal(t, merged.WashLanes, after.Lanes)
}

func TestWashLanes_ImportedStationKeepsOverride_Sqlite(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := ImportLegacy(ctx, services.DBContext.StationRepo, services.Legacy, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	imported, err := services.DBContext.StationRepo.GetByLegacyID(ctx, "station_17")
	require.NoError(t, err)

	byLegacyID, err := services.WashLaneService.Resolve(ctx, "station_17")
	require.NoError(t, err)
	byDatabaseID, err := services.WashLaneService.Resolve(ctx, imported.ID)
	require.NoError(t, err)

	assert.Equal(t, washlanes.SourceOverride, byLegacyID.Source)
	assert.Equal(t, washlanes.SourceOverride, byDatabaseID.Source)
	assert.Equal(t, byLegacyID.Lanes, byDatabaseID.Lanes)
	assert.Len(t, byDatabaseID.Lanes, 4)
}
