package stations

import (
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/pkg/validators"
)

// StationQuery filters the station directory.
// The bounding box is applied only when all four corners are set.
type StationQuery struct {
	Name       string
	Type       string `validate:"omitempty,oneof=wash parking both"`
	Status     string `validate:"omitempty,oneof=pending active rejected"`
	City       string
	PostalCode string
	MinLat     *float64 `validate:"omitempty,latitude"`
	MaxLat     *float64 `validate:"omitempty,latitude"`
	MinLng     *float64 `validate:"omitempty,longitude"`
	MaxLng     *float64 `validate:"omitempty,longitude"`
	Limit      int      `validate:"omitempty,min=0,max=500"`
	Offset     int      `validate:"omitempty,min=0"`
	SortBy     string   `validate:"omitempty,oneof=name city date_time_created"`
	SortOrder  string   `validate:"omitempty,oneof=asc desc"`
}

// NewStationQuery creates a StationQuery listing active stations
func NewStationQuery() *StationQuery {
	return &StationQuery{Status: StatusActive}
}

// HasBoundingBox reports whether all four corners of the map viewport are set
func (q *StationQuery) HasBoundingBox() bool {
	return q.MinLat != nil && q.MaxLat != nil && q.MinLng != nil && q.MaxLng != nil
}

// Validate for validating StationQuery struct
func (q *StationQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if q.HasBoundingBox() && (*q.MinLat > *q.MaxLat || *q.MinLng > *q.MaxLng) {
		return fmt.Errorf("%w: bounding box corners are inverted", ErrValidation)
	}
	return nil
}
