package app

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/pkg/httputil"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"
)

// imageUploadService implements the ImageUploadService interface
type imageUploadService struct {
	connector   images.ImageConnector
	imageRepo   images.ImageRepository
	stationRepo stations.StationRepository
	legacy      stations.LegacyStore
	logger      logger.Logger
}

// NewImageUploadService creates a new instance of ImageUploadService
func NewImageUploadService(connector images.ImageConnector, imageRepo images.ImageRepository, stationRepo stations.StationRepository, legacy stations.LegacyStore, logger logger.Logger) (images.ImageUploadService, error) {
	return &imageUploadService{
		connector:   connector,
		imageRepo:   imageRepo,
		stationRepo: stationRepo,
		legacy:      legacy,
		logger:      logger,
	}, nil
}

// Upload stores the photos of the form and their metadata.
// When any metadata cannot be saved the whole upload is removed again.
func (s *imageUploadService) Upload(ctx context.Context, stationID string, form *multipart.Form, userID string) ([]*images.StationImage, error) {
	if form == nil || len(form.File[httputil.FilesField]) == 0 {
		return nil, fmt.Errorf("%w: no files provided in upload request", images.ErrValidation)
	}
	for _, header := range form.File[httputil.FilesField] {
		if _, err := images.TypeOf(header.Filename); err != nil {
			return nil, err
		}
	}

	if err := requirePublicStation(ctx, s.stationRepo, s.legacy, stationID); err != nil {
		return nil, fmt.Errorf("failed to upload images: %w", err)
	}

	uploaded, err := s.connector.Upload(ctx, form, stationID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to upload images: %w", err)
	}

	for i, img := range uploaded {
		if err := s.imageRepo.Create(ctx, img); err != nil {
			s.rollback(ctx, uploaded, i)
			return nil, fmt.Errorf("failed to save image metadata for '%s': %w", img.Name, err)
		}
	}

	s.logger.Info("images uploaded", "station_id", stationID, "count", len(uploaded), "user_id", userID)
	return uploaded, nil
}

// imageMetadataService implements the ImageMetadataService interface
// rollback removes the metadata saved for uploaded[:saved] and every uploaded object
func (s *imageUploadService) rollback(ctx context.Context, uploaded []*images.StationImage, saved int) {
	for _, img := range uploaded[:saved] {
		if err := s.imageRepo.DeleteByID(ctx, img.ID); err != nil {
			s.logger.Warn("failed to remove image metadata", "id", img.ID, "error", err)
		}
	}
	for _, img := range uploaded {
		if err := s.connector.Delete(ctx, img.ID, img.Name); err != nil {
			s.logger.Warn("failed to remove orphaned image", "id", img.ID, "error", err)
		}
	}
}

type imageMetadataService struct {
	imageRepo images.ImageRepository
	connector images.ImageConnector
	logger    logger.Logger
}

// NewImageMetadataService creates a new instance of ImageMetadataService
func NewImageMetadataService(imageRepo images.ImageRepository, connector images.ImageConnector, logger logger.Logger) (images.ImageMetadataService, error) {
	return &imageMetadataService{
		imageRepo: imageRepo,
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *imageMetadataService) ListByStation(ctx context.Context, stationID string) ([]*images.StationImage, error) {
	list, err := s.imageRepo.ListByStation(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return list, nil
}

func (s *imageMetadataService) GetByID(ctx context.Context, imageID string) (*images.StationImage, error) {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return img, nil
}

// DeleteByID removes the object first; a missing object does not block removing the metadata
func (s *imageMetadataService) DeleteByID(ctx context.Context, imageID string) error {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return fmt.Errorf("failed to get image: %w", err)
	}

	if err := s.connector.Delete(ctx, img.ID, img.Name); err != nil && !errors.Is(err, images.ErrNotFound) {
		return fmt.Errorf("failed to delete image object: %w", err)
	}

	if err := s.imageRepo.DeleteByID(ctx, imageID); err != nil {
		return fmt.Errorf("failed to delete image metadata: %w", err)
	}

	s.logger.Info("image deleted", "id", imageID)
	return nil
}

// imageDownloadService implements the ImageDownloadService interface
type imageDownloadService struct {
	imageRepo images.ImageRepository
	connector images.ImageConnector
	logger    logger.Logger
}

// NewImageDownloadService creates a new instance of ImageDownloadService
func NewImageDownloadService(imageRepo images.ImageRepository, connector images.ImageConnector, logger logger.Logger) (images.ImageDownloadService, error) {
	return &imageDownloadService{
		imageRepo: imageRepo,
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *imageDownloadService) DownloadByID(ctx context.Context, imageID string) ([]byte, *images.StationImage, error) {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get image: %w", err)
	}

	content, err := s.connector.Download(ctx, img.ID, img.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download image: %w", err)
	}
	return content, img, nil
}
