package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"
)

// washLaneService implements the WashLaneService interface
type washLaneService struct {
	repo     stations.StationRepository
	legacy   stations.LegacyStore
	resolver *washlanes.Resolver
	logger   logger.Logger
}

// NewWashLaneService creates a new instance of WashLaneService.
// repo may be nil for offline use, in which case only legacy ids resolve.
func NewWashLaneService(repo stations.StationRepository, legacy stations.LegacyStore, resolver *washlanes.Resolver, logger logger.Logger) (washlanes.WashLaneService, error) {
	if legacy == nil || resolver == nil {
		return nil, fmt.Errorf("legacy store and resolver are required")
	}
	return &washLaneService{
		repo:     repo,
		legacy:   legacy,
		resolver: resolver,
		logger:   logger,
	}, nil
}

// Resolve reads legacy ids from the legacy document overlaid with their database row,
// and other ids from the database, then applies the resolver's fallback chain.
func (s *washLaneService) Resolve(ctx context.Context, stationID string) (*washlanes.Resolution, error) {
	var (
		legacyID string
		name     string
		status   = stations.StatusActive
		lanes    []stations.WashLane
		source   = washlanes.SourceNone
	)

	if stations.IsLegacyID(stationID) {
		legacyID = stationID

		record, raw, err := s.legacy.Get(stationID)
		if err != nil && !errors.Is(err, stations.ErrNotFound) {
			return nil, fmt.Errorf("failed to read legacy station: %w", err)
		}
		overlay, err := s.overlay(ctx, stationID)
		if err != nil {
			return nil, err
		}
		if record == nil && overlay == nil {
			return nil, fmt.Errorf("station %s: %w", stationID, stations.ErrNotFound)
		}

		if record != nil {
			name = record.Name
			if decoded, src, ok := washlanes.DecodeLanes(raw); ok {
				lanes, source = decoded, src
			}
		}
		if overlay != nil {
			status = overlay.Status
			if overlay.Name != "" {
				name = overlay.Name
			}
			if len(overlay.WashLanes) > 0 {
				lanes, source = overlay.WashLanes, washlanes.SourceWashLanes
			}
		}
	} else {
		if s.repo == nil {
			return nil, fmt.Errorf("station %s: %w", stationID, stations.ErrNotFound)
		}
		station, err := s.repo.GetByID(ctx, stationID)
		if err != nil {
			if errors.Is(err, stations.ErrNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to get station: %w", err)
		}
		name = station.Name
		status = station.Status
		if station.LegacyID != nil {
			legacyID = *station.LegacyID
		}
		if len(station.WashLanes) > 0 {
			lanes, source = station.WashLanes, washlanes.SourceWashLanes
		}
	}

	res := s.resolver.Resolve(stationID, legacyID, name, lanes, source)
	res.Status = status
	s.logger.Debug("wash lanes resolved", "id", stationID, "source", res.Source, "lanes", len(res.Lanes))
	return res, nil
}

// overlay returns the database row edited over a legacy record, or nil when there is none
func (s *washLaneService) overlay(ctx context.Context, legacyID string) (*stations.Station, error) {
	if s.repo == nil {
		return nil, nil
	}
	station, err := s.repo.GetByLegacyID(ctx, legacyID)
	if err != nil {
		if errors.Is(err, stations.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get legacy overlay: %w", err)
	}
	return station, nil
}
