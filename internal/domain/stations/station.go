package stations

import (
	"fmt"
	"strings"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/pkg/validators"
)

// Station types
const (
	TypeWash    = "wash"
	TypeParking = "parking"
	TypeBoth    = "both"
)

// Station moderation statuses
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

// LegacyIDPrefix marks ids served from the bundled legacy data set.
const LegacyIDPrefix = "station_"

// IsLegacyID reports whether id addresses a legacy record rather than a database row.
func IsLegacyID(id string) bool {
	return strings.HasPrefix(id, LegacyIDPrefix)
}

// Station entity
type Station struct {
	ID              string    `validate:"required,uuid4"`
	LegacyID        *string   `validate:"omitempty,startswith=station_"`
	Name            string    `validate:"required,min=2,max=255"`
	Type            string    `validate:"required,oneof=wash parking both"`
	Status          string    `validate:"required,oneof=pending active rejected"`
	Address         string    `validate:"max=255"`
	City            string    `validate:"required,max=120"`
	PostalCode      string    `validate:"required,frpostalcode"`
	Latitude        float64   `validate:"latitude"`
	Longitude       float64   `validate:"longitude"`
	Description     string    `validate:"max=4000"`
	Website         string    `validate:"omitempty,url,max=255"`
	Phone           string    `validate:"omitempty,max=30"`
	CreatedByID     *string   `validate:"omitempty,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
	Services        *Service        `validate:"omitempty"`
	ParkingDetails  *ParkingDetails `validate:"omitempty"`
	WashLanes       []WashLane      `validate:"dive"`
}

// Service lists the facilities available at a station
type Service struct {
	DrinkingWater      bool
	GreyWaterDisposal  bool
	BlackWaterDisposal bool
	Electricity        bool
	Toilets            bool
	Showers            bool
	Vacuum             bool
	HighPressure       bool
	PaymentMethods     []string `validate:"dive,oneof=card cash coins tokens app"`
}

// ParkingDetails describes overnight parking conditions
type ParkingDetails struct {
	Capacity               int      `validate:"min=0"`
	IsFree                 bool
	PricePerNight          *float64 `validate:"omitempty,min=0"`
	MaxStayHours           *int     `validate:"omitempty,min=1"`
	OvernightAllowed       bool
	MaxVehicleLengthMeters *float64 `validate:"omitempty,gt=0,lte=20"`
	OpeningHours           string   `validate:"max=255"`
}

// WashLane describes one washing bay
type WashLane struct {
	LaneNumber      int `validate:"min=1"`
	HasHighPressure bool
	HasPortique     bool
	HasTallPortique bool
}

// Validate for validating Station struct
func (s *Station) Validate() error {
	if err := validators.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	seen := make(map[int]bool, len(s.WashLanes))
	for _, lane := range s.WashLanes {
		if seen[lane.LaneNumber] {
			return fmt.Errorf("%w: duplicate wash lane number %d", ErrValidation, lane.LaneNumber)
		}
		seen[lane.LaneNumber] = true
	}

	if s.ParkingDetails != nil && s.ParkingDetails.IsFree && s.ParkingDetails.PricePerNight != nil && *s.ParkingDetails.PricePerNight > 0 {
		return fmt.Errorf("%w: free parking cannot have a nightly price", ErrValidation)
	}

	return nil
}

// CanTransition reports whether the moderation flow allows moving from one status to another.
// Staying on the same status is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusActive || to == StatusRejected
	case StatusActive:
		return to == StatusRejected
	case StatusRejected:
		return to == StatusActive
	default:
		return false
	}
}
