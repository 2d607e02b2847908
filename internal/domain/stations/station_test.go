//go:build unit
// +build unit

package stations

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidStation() *Station {
	price := 12.5
	return &Station{
		ID:              uuid.NewString(),
		Name:            "Aire de lavage du Port",
		Type:            TypeBoth,
		Status:          StatusPending,
		Address:         "12 quai des Pêcheurs",
		City:            "Sète",
		PostalCode:      "34200",
		Latitude:        43.4028,
		Longitude:       3.6936,
		DateTimeCreated: time.Now(),
		Services: &Service{
			DrinkingWater:     true,
			GreyWaterDisposal: true,
			PaymentMethods:    []string{"card", "coins"},
		},
		ParkingDetails: &ParkingDetails{
			Capacity:         20,
			PricePerNight:    &price,
			OvernightAllowed: true,
		},
		WashLanes: []WashLane{
			{LaneNumber: 1, HasHighPressure: true},
			{LaneNumber: 2, HasHighPressure: true, HasPortique: true},
		},
	}
}

func TestStationValidation(t *testing.T) {
	t.Run("valid station", func(t *testing.T) {
		assert.NoError(t, newValidStation().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		s := newValidStation()
		s.Name = ""
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Contains(t, err.Error(), "Field: Station.Name, Tag: required")
	})

	t.Run("unknown type", func(t *testing.T) {
		s := newValidStation()
		s.Type = "garage"
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tag: oneof")
	})

	t.Run("invalid postal code", func(t *testing.T) {
		s := newValidStation()
		s.PostalCode = "99999"
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tag: frpostalcode")
	})

	t.Run("latitude out of range", func(t *testing.T) {
		s := newValidStation()
		s.Latitude = 123.4
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tag: latitude")
	})

	t.Run("bad legacy id", func(t *testing.T) {
		s := newValidStation()
		legacyID := "legacy_3"
		s.LegacyID = &legacyID
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tag: startswith")
	})

	t.Run("unknown payment method", func(t *testing.T) {
		s := newValidStation()
		s.Services.PaymentMethods = []string{"barter"}
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PaymentMethods[0]")
	})

	t.Run("lane number must be positive", func(t *testing.T) {
		s := newValidStation()
		s.WashLanes = []WashLane{{LaneNumber: 0}}
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LaneNumber")
	})

	t.Run("duplicate lane numbers", func(t *testing.T) {
		s := newValidStation()
		s.WashLanes = []WashLane{{LaneNumber: 1}, {LaneNumber: 1}}
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Contains(t, err.Error(), "duplicate wash lane number 1")
	})

	t.Run("free parking with price", func(t *testing.T) {
		s := newValidStation()
		s.ParkingDetails.IsFree = true
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "free parking")
	})
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusRejected, true},
		{StatusActive, StatusRejected, true},
		{StatusRejected, StatusActive, true},
		{StatusActive, StatusActive, true},
		{StatusActive, StatusPending, false},
		{StatusRejected, StatusPending, false},
		{"archived", StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsLegacyID(t *testing.T) {
	assert.True(t, IsLegacyID("station_17"))
	assert.False(t, IsLegacyID(uuid.NewString()))
	assert.False(t, IsLegacyID("Station_17"))
}
