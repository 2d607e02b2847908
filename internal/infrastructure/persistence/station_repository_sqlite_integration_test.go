//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence/models"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	station := CreateTestStation(t, "Lavage des Ducs", "Dijon", "21000")
	require.NoError(t, ctx.StationRepo.Create(context.Background(), station))

	var laneCount int64
	require.NoError(t, ctx.DB.Model(&models.WashLaneModel{}).Where("station_id = ?", station.ID).Count(&laneCount).Error)
	assert.Equal(t, int64(2), laneCount)

	fetched, err := ctx.StationRepo.GetByID(context.Background(), station.ID)
	require.NoError(t, err)
	assert.Equal(t, station.Name, fetched.Name)
	require.NotNil(t, fetched.Services)
	assert.Equal(t, []string{"card"}, fetched.Services.PaymentMethods)
	assert.Nil(t, fetched.ParkingDetails)
	require.Len(t, fetched.WashLanes, 2)
	assert.Equal(t, 1, fetched.WashLanes[0].LaneNumber)
}

func TestStationSqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.StationRepo.Create(context.Background(), &stations.Station{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, stations.ErrValidation))
}

func TestStationSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.StationRepo.GetByID(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, stations.ErrNotFound))
}

func TestStationSqliteRepository_GetByLegacyID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	legacyID := "station_17"
	station := CreateTestStation(t, "Station Wash Le Mans Nord", "Le Mans", "72000")
	station.LegacyID = &legacyID
	require.NoError(t, ctx.StationRepo.Create(context.Background(), station))

	fetched, err := ctx.StationRepo.GetByLegacyID(context.Background(), legacyID)
	require.NoError(t, err)
	assert.Equal(t, station.ID, fetched.ID)

	_, err = ctx.StationRepo.GetByLegacyID(context.Background(), "station_18")
	assert.True(t, errors.Is(err, stations.ErrNotFound))
}

func TestStationSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	annecy := CreateTestStation(t, "Aire du Lac", "Annecy", "74000")
	annecy.Status = stations.StatusActive
	annecy.Latitude, annecy.Longitude = 45.8992, 6.1294
	lyon := CreateTestStation(t, "Lavage Gerland", "Lyon", "69007")
	lyon.Status = stations.StatusActive
	lyon.Latitude, lyon.Longitude = 45.7485, 4.8467
	pending := CreateTestStation(t, "Aire en attente", "Annecy", "74000")

	for _, s := range []*stations.Station{annecy, lyon, pending} {
		require.NoError(t, ctx.StationRepo.Create(context.Background(), s))
	}

	list, err := ctx.StationRepo.List(context.Background(), stations.NewStationQuery())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Aire du Lac", list[0].Name)
	assert.Len(t, list[0].WashLanes, 2)

	q := stations.NewStationQuery()
	q.City = "annecy"
	list, err = ctx.StationRepo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, annecy.ID, list[0].ID)

	q = stations.NewStationQuery()
	minLat, maxLat, minLng, maxLng := 45.5, 46.0, 4.0, 5.5
	q.MinLat, q.MaxLat, q.MinLng, q.MaxLng = &minLat, &maxLat, &minLng, &maxLng
	list, err = ctx.StationRepo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, lyon.ID, list[0].ID)

	q = stations.NewStationQuery()
	q.Status = ""
	q.SortBy = "name"
	q.SortOrder = "desc"
	q.Limit = 1
	list, err = ctx.StationRepo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lavage Gerland", list[0].Name)
}

func TestStationSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	q := stations.NewStationQuery()
	q.SortBy = "rating"
	_, err := ctx.StationRepo.List(context.Background(), q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query parameters")
}

func TestStationSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	station := CreateTestStation(t, "Lavage des Ducs", "Dijon", "21000")
	require.NoError(t, ctx.StationRepo.Create(context.Background(), station))

	station.Name = "Lavage des Ducs de Bourgogne"
	station.Services = nil
	station.ParkingDetails = &stations.ParkingDetails{Capacity: 6, IsFree: true}
	station.WashLanes = []stations.WashLane{{LaneNumber: 1}, {LaneNumber: 2}, {LaneNumber: 3, HasTallPortique: true}}
	require.NoError(t, ctx.StationRepo.UpdateByID(context.Background(), station))

	fetched, err := ctx.StationRepo.GetByID(context.Background(), station.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lavage des Ducs de Bourgogne", fetched.Name)
	assert.Nil(t, fetched.Services)
	require.NotNil(t, fetched.ParkingDetails)
	assert.Equal(t, 6, fetched.ParkingDetails.Capacity)
	require.Len(t, fetched.WashLanes, 3)
	assert.True(t, fetched.WashLanes[2].HasTallPortique)

	missing := CreateTestStation(t, "Inconnue", "Dijon", "21000")
	err = ctx.StationRepo.UpdateByID(context.Background(), missing)
	assert.True(t, errors.Is(err, stations.ErrNotFound))
}

func TestStationSqliteRepository_UpdateStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	station := CreateTestStation(t, "Lavage des Ducs", "Dijon", "21000")
	require.NoError(t, ctx.StationRepo.Create(context.Background(), station))
	require.NoError(t, ctx.StationRepo.UpdateStatus(context.Background(), station.ID, stations.StatusActive))

	fetched, err := ctx.StationRepo.GetByID(context.Background(), station.ID)
	require.NoError(t, err)
	assert.Equal(t, stations.StatusActive, fetched.Status)
	assert.False(t, fetched.DateTimeUpdated.IsZero())

	err = ctx.StationRepo.UpdateStatus(context.Background(), uuid.NewString(), stations.StatusActive)
	assert.True(t, errors.Is(err, stations.ErrNotFound))
}

func TestStationSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "reviewer@example.fr")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	station := CreateTestStation(t, "Lavage des Ducs", "Dijon", "21000")
	require.NoError(t, ctx.StationRepo.Create(context.Background(), station))
	require.NoError(t, ctx.ReviewRepo.Create(context.Background(), CreateTestReview(t, station.ID, user.ID, 5)))

	require.NoError(t, ctx.StationRepo.DeleteByID(context.Background(), station.ID))

	_, err := ctx.StationRepo.GetByID(context.Background(), station.ID)
	assert.True(t, errors.Is(err, stations.ErrNotFound))

	var remaining int64
	require.NoError(t, ctx.DB.Model(&models.WashLaneModel{}).Where("station_id = ?", station.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
	require.NoError(t, ctx.DB.Model(&models.ReviewModel{}).Where("station_id = ?", station.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	err = ctx.StationRepo.DeleteByID(context.Background(), station.ID)
	assert.True(t, errors.Is(err, stations.ErrNotFound))
}
