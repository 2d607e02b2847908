package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
)

// requirePublicStation returns nil when stationID names a legacy record or an active database station
func requirePublicStation(ctx context.Context, repo stations.StationRepository, legacy stations.LegacyStore, stationID string) error {
	if stations.IsLegacyID(stationID) {
		if _, _, err := legacy.Get(stationID); err == nil {
			return nil
		} else if !errors.Is(err, stations.ErrNotFound) {
			return err
		}
		st, err := repo.GetByLegacyID(ctx, stationID)
		if err != nil {
			return err
		}
		return requireActive(st)
	}

	st, err := repo.GetByID(ctx, stationID)
	if err != nil {
		return err
	}
	return requireActive(st)
}

func requireActive(st *stations.Station) error {
	if st.Status != stations.StatusActive {
		return fmt.Errorf("station %s is %s: %w", st.ID, st.Status, stations.ErrNotFound)
	}
	return nil
}
