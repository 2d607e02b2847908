package washlanes

import "github.com/splashcamper/splashcamper-api/internal/domain/stations"

// Where a resolved lane list came from
const (
	SourceWashLanes    = "washLanes"
	SourceSnakeCase    = "wash_lanes"
	SourceOverride     = "override"
	SourceBrandDefault = "brand_default"
	SourceNone         = "none"
)

// Resolution is the lane list of one station together with its source
type Resolution struct {
	StationID string
	// Status is the moderation status of the station the lanes belong to
	Status string
	Source string
	Lanes  []stations.WashLane
}
