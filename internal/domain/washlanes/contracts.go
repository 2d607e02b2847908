package washlanes

import "context"

// WashLaneService resolves the lane layout of a database or legacy station
type WashLaneService interface {
	Resolve(ctx context.Context, stationID string) (*Resolution, error)
}
