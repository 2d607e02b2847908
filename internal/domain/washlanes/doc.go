// Package washlanes works out the wash-lane layout of a station.
//
// Lanes come from the station record itself when it carries them, either in
// the camelCase washLanes array or the older snake_case wash_lanes array.
// Stations without lane data fall back to a table of known layouts, then to a
// generic two-lane layout for known wash brands, and finally to no lanes.
package washlanes
