package models

import (
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
)

// StationImageModel is the GORM database model for station photo metadata
type StationImageModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	StationID       string    `gorm:"not null;index;type:varchar(64)"`
	UserID          string    `gorm:"not null;index;type:varchar(36)"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	Size            int64     `gorm:"not null"`
	Type            string    `gorm:"not null;type:varchar(10)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (StationImageModel) TableName() string {
	return "station_images"
}

// ToDomain converts GORM model to domain entity
func (m *StationImageModel) ToDomain() *images.StationImage {
	return &images.StationImage{
		ID:              m.ID,
		StationID:       m.StationID,
		UserID:          m.UserID,
		Name:            m.Name,
		Size:            m.Size,
		Type:            m.Type,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *StationImageModel) FromDomain(i *images.StationImage) {
	m.ID = i.ID
	m.StationID = i.StationID
	m.UserID = i.UserID
	m.Name = i.Name
	m.Size = i.Size
	m.Type = i.Type
	m.DateTimeCreated = i.DateTimeCreated
}
