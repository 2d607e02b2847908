package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"
)

// adminStationService implements the AdminStationService interface
type adminStationService struct {
	repo           stations.StationRepository
	imageRepo      images.ImageRepository
	imageConnector images.ImageConnector
	logger         logger.Logger
}

// NewAdminStationService creates a new instance of AdminStationService.
// imageConnector may be nil, in which case stored image objects are left in place on delete.
func NewAdminStationService(repo stations.StationRepository, imageRepo images.ImageRepository, imageConnector images.ImageConnector, logger logger.Logger) (stations.AdminStationService, error) {
	return &adminStationService{
		repo:           repo,
		imageRepo:      imageRepo,
		imageConnector: imageConnector,
		logger:         logger,
	}, nil
}

// List returns stations in every status unless the query narrows it
func (s *adminStationService) List(ctx context.Context, query *stations.StationQuery) ([]*stations.Station, error) {
	if query == nil {
		query = &stations.StationQuery{SortBy: "date_time_created", SortOrder: "desc"}
	}

	list, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return list, nil
}

// SetStatus applies a moderation decision. Setting the current status again is a no-op.
func (s *adminStationService) SetStatus(ctx context.Context, stationID, status string) (*stations.Station, error) {
	switch status {
	case stations.StatusPending, stations.StatusActive, stations.StatusRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", stations.ErrValidation, status)
	}

	station, err := s.repo.GetByID(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	if station.Status == status {
		return station, nil
	}
	if !stations.CanTransition(station.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", stations.ErrInvalidTransition, station.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, stationID, status); err != nil {
		return nil, fmt.Errorf("failed to update station status: %w", err)
	}

	s.logger.Info("station status changed", "id", stationID, "from", station.Status, "to", status)
	station.Status = status
	return station, nil
}

// DeleteByID removes a station, its stored images and everything the repository cascades
func (s *adminStationService) DeleteByID(ctx context.Context, stationID string) error {
	if _, err := s.repo.GetByID(ctx, stationID); err != nil {
		return fmt.Errorf("failed to get station: %w", err)
	}

	if s.imageConnector != nil {
		imgs, err := s.imageRepo.ListByStation(ctx, stationID)
		if err != nil {
			return fmt.Errorf("failed to list station images: %w", err)
		}
		for _, img := range imgs {
			if err := s.imageConnector.Delete(ctx, img.ID, img.Name); err != nil && !errors.Is(err, images.ErrNotFound) {
				return fmt.Errorf("failed to delete image %s: %w", img.ID, err)
			}
		}
	}

	if err := s.repo.DeleteByID(ctx, stationID); err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}

	s.logger.Info("station deleted", "id", stationID)
	return nil
}
