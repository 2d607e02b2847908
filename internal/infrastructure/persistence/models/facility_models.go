package models

import "github.com/splashcamper/splashcamper-api/internal/domain/stations"

// ServiceModel stores the facilities of one station
type ServiceModel struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement"`
	StationID          string   `gorm:"not null;uniqueIndex;type:varchar(36)"`
	DrinkingWater      bool     `gorm:"not null;default:false"`
	GreyWaterDisposal  bool     `gorm:"not null;default:false"`
	BlackWaterDisposal bool     `gorm:"not null;default:false"`
	Electricity        bool     `gorm:"not null;default:false"`
	Toilets            bool     `gorm:"not null;default:false"`
	Showers            bool     `gorm:"not null;default:false"`
	Vacuum             bool     `gorm:"not null;default:false"`
	HighPressure       bool     `gorm:"not null;default:false"`
	PaymentMethods     []string `gorm:"serializer:json"`
}

// TableName specifies the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceModel) ToDomain() *stations.Service {
	return &stations.Service{
		DrinkingWater:      m.DrinkingWater,
		GreyWaterDisposal:  m.GreyWaterDisposal,
		BlackWaterDisposal: m.BlackWaterDisposal,
		Electricity:        m.Electricity,
		Toilets:            m.Toilets,
		Showers:            m.Showers,
		Vacuum:             m.Vacuum,
		HighPressure:       m.HighPressure,
		PaymentMethods:     m.PaymentMethods,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceModel) FromDomain(stationID string, s *stations.Service) {
	m.StationID = stationID
	m.DrinkingWater = s.DrinkingWater
	m.GreyWaterDisposal = s.GreyWaterDisposal
	m.BlackWaterDisposal = s.BlackWaterDisposal
	m.Electricity = s.Electricity
	m.Toilets = s.Toilets
	m.Showers = s.Showers
	m.Vacuum = s.Vacuum
	m.HighPressure = s.HighPressure
	m.PaymentMethods = s.PaymentMethods
}

// ParkingDetailsModel stores the parking conditions of one station
type ParkingDetailsModel struct {
	ID                     uint     `gorm:"primaryKey;autoIncrement"`
	StationID              string   `gorm:"not null;uniqueIndex;type:varchar(36)"`
	Capacity               int      `gorm:"not null;default:0"`
	IsFree                 bool     `gorm:"not null;default:false"`
	PricePerNight          *float64 `gorm:"type:decimal(8,2)"`
	MaxStayHours           *int     `gorm:"type:integer"`
	OvernightAllowed       bool     `gorm:"not null;default:false"`
	MaxVehicleLengthMeters *float64 `gorm:"type:decimal(4,2)"`
	OpeningHours           string   `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (ParkingDetailsModel) TableName() string {
	return "parking_details"
}

// ToDomain converts GORM model to domain entity
func (m *ParkingDetailsModel) ToDomain() *stations.ParkingDetails {
	return &stations.ParkingDetails{
		Capacity:               m.Capacity,
		IsFree:                 m.IsFree,
		PricePerNight:          m.PricePerNight,
		MaxStayHours:           m.MaxStayHours,
		OvernightAllowed:       m.OvernightAllowed,
		MaxVehicleLengthMeters: m.MaxVehicleLengthMeters,
		OpeningHours:           m.OpeningHours,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ParkingDetailsModel) FromDomain(stationID string, p *stations.ParkingDetails) {
	m.StationID = stationID
	m.Capacity = p.Capacity
	m.IsFree = p.IsFree
	m.PricePerNight = p.PricePerNight
	m.MaxStayHours = p.MaxStayHours
	m.OvernightAllowed = p.OvernightAllowed
	m.MaxVehicleLengthMeters = p.MaxVehicleLengthMeters
	m.OpeningHours = p.OpeningHours
}

// WashLaneModel stores one wash lane. Lane numbers are unique per station.
type WashLaneModel struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	StationID       string `gorm:"not null;uniqueIndex:idx_wash_lanes_station_lane,priority:1;type:varchar(36)"`
	LaneNumber      int    `gorm:"not null;uniqueIndex:idx_wash_lanes_station_lane,priority:2"`
	HasHighPressure bool   `gorm:"not null;default:false"`
	HasPortique     bool   `gorm:"not null;default:false"`
	HasTallPortique bool   `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (WashLaneModel) TableName() string {
	return "wash_lanes"
}

// ToDomain converts GORM model to domain entity
func (m *WashLaneModel) ToDomain() stations.WashLane {
	return stations.WashLane{
		LaneNumber:      m.LaneNumber,
		HasHighPressure: m.HasHighPressure,
		HasPortique:     m.HasPortique,
		HasTallPortique: m.HasTallPortique,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WashLaneModel) FromDomain(stationID string, l stations.WashLane) {
	m.StationID = stationID
	m.LaneNumber = l.LaneNumber
	m.HasHighPressure = l.HasHighPressure
	m.HasPortique = l.HasPortique
	m.HasTallPortique = l.HasTallPortique
}
