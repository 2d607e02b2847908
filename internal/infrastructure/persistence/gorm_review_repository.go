package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence/models"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormReviewRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReviewRepository creates a new GORM-based ReviewRepository implementation
func NewGormReviewRepository(db *gorm.DB, logger logger.Logger) (reviews.ReviewRepository, error) {
	return &gormReviewRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReviewRepository) Create(ctx context.Context, review *reviews.Review) error {
	if err := review.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReviewModel{}
	model.FromDomain(review)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("station %s: %w", review.StationID, reviews.ErrDuplicate)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Info("Created review", "id", review.ID, "station", review.StationID)
	return nil
}

func (r *gormReviewRepository) List(ctx context.Context, query *reviews.ReviewQuery) ([]*reviews.Review, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ReviewModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ReviewModel{})

	if query.StationID != "" {
		dbQuery = dbQuery.Where("station_id = ?", query.StationID)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.MinRating > 0 {
		dbQuery = dbQuery.Where("rating >= ?", query.MinRating)
	}

	dbQuery = dbQuery.Order("date_time_created desc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	domainList := make([]*reviews.Review, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormReviewRepository) GetByID(ctx context.Context, reviewID string) (*reviews.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).Where("id = ?", reviewID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review with ID %s: %w", reviewID, reviews.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormReviewRepository) ExistsForUser(ctx context.Context, stationID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ReviewModel{}).
		Where("station_id = ? AND user_id = ?", stationID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count > 0, nil
}

func (r *gormReviewRepository) DeleteByID(ctx context.Context, reviewID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", reviewID).Delete(&models.ReviewModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", reviewID, reviews.ErrNotFound)
	}

	r.logger.Info("Deleted review", "id", reviewID)
	return nil
}
