package washlanes

import (
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"

	"github.com/tidwall/gjson"
)

type laneKeys struct {
	number       string
	highPressure string
	portique     string
	tallPortique string
}

var (
	camelKeys = laneKeys{"laneNumber", "hasHighPressure", "hasPortique", "hasTallPortique"}
	snakeKeys = laneKeys{"lane_number", "has_high_pressure", "has_portique", "has_tall_portique"}
)

// DecodeLanes reads the lane list embedded in a raw station document.
// A non-empty washLanes array wins over a non-empty wash_lanes array.
// The boolean is false when neither array holds any lane.
func DecodeLanes(raw []byte) ([]stations.WashLane, string, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, SourceNone, false
	}

	if lanes := decodeArray(gjson.GetBytes(raw, "washLanes"), camelKeys); len(lanes) > 0 {
		return lanes, SourceWashLanes, true
	}
	if lanes := decodeArray(gjson.GetBytes(raw, "wash_lanes"), snakeKeys); len(lanes) > 0 {
		return lanes, SourceSnakeCase, true
	}
	return nil, SourceNone, false
}

// decodeArray keeps explicit lane numbers once each and gives missing or
// repeated numbers the lowest unused value, in document order.
func decodeArray(arr gjson.Result, keys laneKeys) []stations.WashLane {
	if !arr.IsArray() {
		return nil
	}

	var lanes []stations.WashLane
	var unnumbered []int
	used := map[int]bool{}
	arr.ForEach(func(idx, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		lane := stations.WashLane{
			LaneNumber:      int(item.Get(keys.number).Int()),
			HasHighPressure: item.Get(keys.highPressure).Bool(),
			HasPortique:     item.Get(keys.portique).Bool(),
			HasTallPortique: item.Get(keys.tallPortique).Bool(),
		}
		if lane.LaneNumber > 0 && !used[lane.LaneNumber] {
			used[lane.LaneNumber] = true
		} else {
			unnumbered = append(unnumbered, len(lanes))
		}
		lanes = append(lanes, lane)
		return true
	})

	next := 1
	for _, i := range unnumbered {
		for used[next] {
			next++
		}
		lanes[i].LaneNumber = next
		used[next] = true
	}
	return lanes
}
