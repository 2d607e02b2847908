package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// stationService implements the StationService interface
type stationService struct {
	repo   stations.StationRepository
	legacy stations.LegacyStore
	logger logger.Logger
}

// NewStationService creates a new instance of StationService
func NewStationService(repo stations.StationRepository, legacy stations.LegacyStore, logger logger.Logger) (stations.StationService, error) {
	return &stationService{
		repo:   repo,
		legacy: legacy,
		logger: logger,
	}, nil
}

// Submit stores a user-proposed station. It stays pending until a moderator activates it.
func (s *stationService) Submit(ctx context.Context, station *stations.Station, userID string) (*stations.Station, error) {
	station.ID = uuid.NewString()
	station.LegacyID = nil
	station.Status = stations.StatusPending
	station.CreatedByID = &userID
	station.DateTimeCreated = time.Now()
	station.DateTimeUpdated = time.Time{}

	if err := s.repo.Create(ctx, station); err != nil {
		return nil, fmt.Errorf("failed to submit station: %w", err)
	}

	s.logger.Info("station submitted", "id", station.ID, "name", station.Name, "user_id", userID)
	return station, nil
}

// List returns database stations matching query. A nil query lists active stations.
func (s *stationService) List(ctx context.Context, query *stations.StationQuery) ([]*stations.Station, error) {
	if query == nil {
		query = stations.NewStationQuery()
	}

	list, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return list, nil
}

// GetByID returns a database station, or for legacy ids the legacy record overlaid with its database row
func (s *stationService) GetByID(ctx context.Context, stationID string) (*stations.Station, error) {
	if !stations.IsLegacyID(stationID) {
		station, err := s.repo.GetByID(ctx, stationID)
		if err != nil {
			return nil, fmt.Errorf("failed to get station: %w", err)
		}
		return station, nil
	}

	legacy, _, err := s.legacy.Get(stationID)
	if err != nil && !errors.Is(err, stations.ErrNotFound) {
		return nil, fmt.Errorf("failed to read legacy station: %w", err)
	}

	overlay, err := s.repo.GetByLegacyID(ctx, stationID)
	if err != nil {
		if !errors.Is(err, stations.ErrNotFound) {
			return nil, fmt.Errorf("failed to get station: %w", err)
		}
		overlay = nil
	}

	if legacy == nil && overlay == nil {
		return nil, fmt.Errorf("station %s: %w", stationID, stations.ErrNotFound)
	}
	return stations.MergeLegacy(legacy, overlay), nil
}

// Update replaces the editable fields of a station. Status, creator and creation time are kept.
// Updating a legacy id writes the database overlay of that record, creating it on first edit.
func (s *stationService) Update(ctx context.Context, station *stations.Station) (*stations.Station, error) {
	if stations.IsLegacyID(station.ID) {
		return s.updateLegacy(ctx, station)
	}

	existing, err := s.repo.GetByID(ctx, station.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	station.LegacyID = existing.LegacyID
	station.Status = existing.Status
	station.CreatedByID = existing.CreatedByID
	station.DateTimeCreated = existing.DateTimeCreated
	station.DateTimeUpdated = time.Now()

	if err := s.repo.UpdateByID(ctx, station); err != nil {
		return nil, fmt.Errorf("failed to update station: %w", err)
	}

	s.logger.Info("station updated", "id", station.ID)
	return station, nil
}

func (s *stationService) updateLegacy(ctx context.Context, station *stations.Station) (*stations.Station, error) {
	legacyID := station.ID

	existing, err := s.repo.GetByLegacyID(ctx, legacyID)
	if err != nil && !errors.Is(err, stations.ErrNotFound) {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	if existing == nil {
		if _, _, err := s.legacy.Get(legacyID); err != nil {
			return nil, fmt.Errorf("failed to read legacy station: %w", err)
		}
		station.ID = uuid.NewString()
		station.LegacyID = &legacyID
		station.Status = stations.StatusActive
		station.CreatedByID = nil
		station.DateTimeCreated = time.Now()
		station.DateTimeUpdated = station.DateTimeCreated

		if err := s.repo.Create(ctx, station); err != nil {
			return nil, fmt.Errorf("failed to create legacy overlay: %w", err)
		}
		s.logger.Info("legacy station overlay created", "legacy_id", legacyID, "id", station.ID)
		return station, nil
	}

	station.ID = existing.ID
	station.LegacyID = &legacyID
	station.Status = existing.Status
	station.CreatedByID = existing.CreatedByID
	station.DateTimeCreated = existing.DateTimeCreated
	station.DateTimeUpdated = time.Now()

	if err := s.repo.UpdateByID(ctx, station); err != nil {
		return nil, fmt.Errorf("failed to update station: %w", err)
	}

	s.logger.Info("legacy station overlay updated", "legacy_id", legacyID, "id", station.ID)
	return station, nil
}

// ImportLegacy creates an active database row for every legacy record not imported yet.
// It returns the number of rows created.
func ImportLegacy(ctx context.Context, repo stations.StationRepository, legacy stations.LegacyStore, logger logger.Logger) (int, error) {
	created := 0
	for _, record := range legacy.List() {
		_, err := repo.GetByLegacyID(ctx, record.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, stations.ErrNotFound) {
			return created, fmt.Errorf("failed to look up %s: %w", record.ID, err)
		}

		legacyID := record.ID
		record.ID = uuid.NewString()
		record.LegacyID = &legacyID
		record.Status = stations.StatusActive
		record.DateTimeCreated = time.Now()

		if err := repo.Create(ctx, record); err != nil {
			return created, fmt.Errorf("failed to import %s: %w", legacyID, err)
		}
		created++
	}

	logger.Info("legacy import finished", "created", created)
	return created, nil
}
