package models

import (
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
)

// StationModel is the GORM database model for stations
type StationModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	LegacyID        *string   `gorm:"uniqueIndex;type:varchar(64)"`
	Name            string    `gorm:"not null;index;type:varchar(255)"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	Status          string    `gorm:"not null;index;type:varchar(20)"`
	Address         string    `gorm:"type:varchar(255)"`
	City            string    `gorm:"not null;index;type:varchar(120)"`
	PostalCode      string    `gorm:"not null;index;type:varchar(5)"`
	Latitude        float64   `gorm:"not null;index:idx_stations_position,priority:1"`
	Longitude       float64   `gorm:"not null;index:idx_stations_position,priority:2"`
	Description     string    `gorm:"type:text"`
	Website         string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(30)"`
	CreatedByID     *string   `gorm:"index;type:varchar(36)"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time

	Service        *ServiceModel        `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE"`
	ParkingDetails *ParkingDetailsModel `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE"`
	WashLanes      []WashLaneModel      `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (StationModel) TableName() string {
	return "stations"
}

// ToDomain converts GORM model to domain entity
func (m *StationModel) ToDomain() *stations.Station {
	s := &stations.Station{
		ID:              m.ID,
		LegacyID:        m.LegacyID,
		Name:            m.Name,
		Type:            m.Type,
		Status:          m.Status,
		Address:         m.Address,
		City:            m.City,
		PostalCode:      m.PostalCode,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		Description:     m.Description,
		Website:         m.Website,
		Phone:           m.Phone,
		CreatedByID:     m.CreatedByID,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
	if m.Service != nil {
		s.Services = m.Service.ToDomain()
	}
	if m.ParkingDetails != nil {
		s.ParkingDetails = m.ParkingDetails.ToDomain()
	}
	for _, lane := range m.WashLanes {
		s.WashLanes = append(s.WashLanes, lane.ToDomain())
	}
	return s
}

// FromDomain converts domain entity to GORM model, nested records included
func (m *StationModel) FromDomain(s *stations.Station) {
	m.ID = s.ID
	m.LegacyID = s.LegacyID
	m.Name = s.Name
	m.Type = s.Type
	m.Status = s.Status
	m.Address = s.Address
	m.City = s.City
	m.PostalCode = s.PostalCode
	m.Latitude = s.Latitude
	m.Longitude = s.Longitude
	m.Description = s.Description
	m.Website = s.Website
	m.Phone = s.Phone
	m.CreatedByID = s.CreatedByID
	m.DateTimeCreated = s.DateTimeCreated
	m.DateTimeUpdated = s.DateTimeUpdated

	m.Service = nil
	if s.Services != nil {
		m.Service = &ServiceModel{}
		m.Service.FromDomain(s.ID, s.Services)
	}
	m.ParkingDetails = nil
	if s.ParkingDetails != nil {
		m.ParkingDetails = &ParkingDetailsModel{}
		m.ParkingDetails.FromDomain(s.ID, s.ParkingDetails)
	}
	m.WashLanes = nil
	for _, lane := range s.WashLanes {
		var lm WashLaneModel
		lm.FromDomain(s.ID, lane)
		m.WashLanes = append(m.WashLanes, lm)
	}
}
