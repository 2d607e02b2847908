package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence/models"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStationRepository creates a new GORM-based StationRepository implementation
func NewGormStationRepository(db *gorm.DB, logger logger.Logger) (stations.StationRepository, error) {
	return &gormStationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStationRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Service").
		Preload("ParkingDetails").
		Preload("WashLanes", func(db *gorm.DB) *gorm.DB {
			return db.Order("lane_number asc")
		})
}

func (r *gormStationRepository) Create(ctx context.Context, station *stations.Station) error {
	if err := station.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StationModel{}
	model.FromDomain(station)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}

	r.logger.Info("Created station", "id", station.ID, "status", station.Status)
	return nil
}

func (r *gormStationRepository) List(ctx context.Context, query *stations.StationQuery) ([]*stations.Station, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.StationModel
	dbQuery := r.withDetails(ctx).Model(&models.StationModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Name)+"%")
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.City != "" {
		dbQuery = dbQuery.Where("LOWER(city) = ?", strings.ToLower(query.City))
	}
	if query.PostalCode != "" {
		dbQuery = dbQuery.Where("postal_code LIKE ?", query.PostalCode+"%")
	}
	if query.HasBoundingBox() {
		dbQuery = dbQuery.
			Where("latitude BETWEEN ? AND ?", *query.MinLat, *query.MaxLat).
			Where("longitude BETWEEN ? AND ?", *query.MinLng, *query.MaxLng)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch stations: %w", err)
	}

	domainList := make([]*stations.Station, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormStationRepository) GetByID(ctx context.Context, stationID string) (*stations.Station, error) {
	var model models.StationModel
	if err := r.withDetails(ctx).Where("id = ?", stationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("station with ID %s: %w", stationID, stations.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch station: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStationRepository) GetByLegacyID(ctx context.Context, legacyID string) (*stations.Station, error) {
	var model models.StationModel
	if err := r.withDetails(ctx).Where("legacy_id = ?", legacyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("station with legacy ID %s: %w", legacyID, stations.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch station: %w", err)
	}
	return model.ToDomain(), nil
}

// UpdateByID saves the station row and replaces its facilities, parking details and lanes
func (r *gormStationRepository) UpdateByID(ctx context.Context, station *stations.Station) error {
	if err := station.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StationModel{}
	model.FromDomain(station)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.StationModel{}).Where("id = ?", station.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("station with ID %s: %w", station.ID, stations.ErrNotFound)
		}

		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		if err := deleteStationDetails(tx, station.ID); err != nil {
			return err
		}
		if model.Service != nil {
			if err := tx.Create(model.Service).Error; err != nil {
				return err
			}
		}
		if model.ParkingDetails != nil {
			if err := tx.Create(model.ParkingDetails).Error; err != nil {
				return err
			}
		}
		if len(model.WashLanes) > 0 {
			if err := tx.Create(&model.WashLanes).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, stations.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update station: %w", err)
	}

	r.logger.Info("Updated station", "id", station.ID)
	return nil
}

func (r *gormStationRepository) UpdateStatus(ctx context.Context, stationID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.StationModel{}).
		Where("id = ?", stationID).
		Updates(map[string]interface{}{
			"status":            status,
			"date_time_updated": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update station status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("station with ID %s: %w", stationID, stations.ErrNotFound)
	}

	r.logger.Info("Updated station status", "id", stationID, "status", status)
	return nil
}

// DeleteByID removes the station with everything hanging off it. Stored image objects are
// the caller's concern; only their metadata rows go here.
func (r *gormStationRepository) DeleteByID(ctx context.Context, stationID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteStationDetails(tx, stationID); err != nil {
			return err
		}
		if err := tx.Where("station_id = ?", stationID).Delete(&models.ReviewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("station_id = ?", stationID).Delete(&models.StationImageModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", stationID).Delete(&models.StationModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("station with ID %s: %w", stationID, stations.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, stations.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete station: %w", err)
	}

	r.logger.Info("Deleted station", "id", stationID)
	return nil
}

func deleteStationDetails(tx *gorm.DB, stationID string) error {
	for _, m := range []interface{}{&models.ServiceModel{}, &models.ParkingDetailsModel{}, &models.WashLaneModel{}} {
		if err := tx.Where("station_id = ?", stationID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
