package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence/models"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormStationImageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStationImageRepository creates a new GORM-based ImageRepository implementation
func NewGormStationImageRepository(db *gorm.DB, logger logger.Logger) (images.ImageRepository, error) {
	return &gormStationImageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStationImageRepository) Create(ctx context.Context, image *images.StationImage) error {
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StationImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create image metadata: %w", err)
	}

	r.logger.Info("Created image metadata", "id", image.ID, "station", image.StationID)
	return nil
}

func (r *gormStationImageRepository) ListByStation(ctx context.Context, stationID string) ([]*images.StationImage, error) {
	var modelList []*models.StationImageModel
	err := r.db.WithContext(ctx).
		Where("station_id = ?", stationID).
		Order("date_time_created asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch images: %w", err)
	}

	domainList := make([]*images.StationImage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormStationImageRepository) GetByID(ctx context.Context, imageID string) (*images.StationImage, error) {
	var model models.StationImageModel
	if err := r.db.WithContext(ctx).Where("id = ?", imageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("image with ID %s: %w", imageID, images.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStationImageRepository) DeleteByID(ctx context.Context, imageID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", imageID).Delete(&models.StationImageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete image metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("image with ID %s: %w", imageID, images.ErrNotFound)
	}

	r.logger.Info("Deleted image metadata", "id", imageID)
	return nil
}
