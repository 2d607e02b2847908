package app

import (
	"context"
	"fmt"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// reviewService implements the ReviewService interface
type reviewService struct {
	reviewRepo  reviews.ReviewRepository
	stationRepo stations.StationRepository
	legacy      stations.LegacyStore
	logger      logger.Logger
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(reviewRepo reviews.ReviewRepository, stationRepo stations.StationRepository, legacy stations.LegacyStore, logger logger.Logger) (reviews.ReviewService, error) {
	return &reviewService{
		reviewRepo:  reviewRepo,
		stationRepo: stationRepo,
		legacy:      legacy,
		logger:      logger,
	}, nil
}

func (s *reviewService) Submit(ctx context.Context, review *reviews.Review) (*reviews.Review, error) {
	if err := requirePublicStation(ctx, s.stationRepo, s.legacy, review.StationID); err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	exists, err := s.reviewRepo.ExistsForUser(ctx, review.StationID, review.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("station %s: %w", review.StationID, reviews.ErrDuplicate)
	}

	review.ID = uuid.NewString()
	review.DateTimeCreated = time.Now()

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	s.logger.Info("review submitted", "id", review.ID, "station_id", review.StationID, "rating", review.Rating)
	return review, nil
}

func (s *reviewService) ListByStation(ctx context.Context, query *reviews.ReviewQuery) ([]*reviews.Review, error) {
	list, err := s.reviewRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return list, nil
}

// Summary is computed from the stored reviews on every call
func (s *reviewService) Summary(ctx context.Context, stationID string) (*reviews.Summary, error) {
	list, err := s.reviewRepo.List(ctx, reviews.NewReviewQuery(stationID))
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reviews: %w", err)
	}
	return reviews.Summarize(stationID, list), nil
}

func (s *reviewService) DeleteByID(ctx context.Context, reviewID string) error {
	if err := s.reviewRepo.DeleteByID(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.logger.Info("review deleted", "id", reviewID)
	return nil
}
