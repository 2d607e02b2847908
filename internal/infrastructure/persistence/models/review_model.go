package models

import (
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
)

// ReviewModel is the GORM database model for reviews.
// StationID may hold a legacy id, so it carries no foreign key.
type ReviewModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	StationID       string    `gorm:"not null;uniqueIndex:idx_reviews_station_user,priority:1;type:varchar(64)"`
	UserID          string    `gorm:"not null;uniqueIndex:idx_reviews_station_user,priority:2;type:varchar(36)"`
	Rating          int       `gorm:"not null"`
	Comment         string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts GORM model to domain entity
func (m *ReviewModel) ToDomain() *reviews.Review {
	return &reviews.Review{
		ID:              m.ID,
		StationID:       m.StationID,
		UserID:          m.UserID,
		Rating:          m.Rating,
		Comment:         m.Comment,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReviewModel) FromDomain(r *reviews.Review) {
	m.ID = r.ID
	m.StationID = r.StationID
	m.UserID = r.UserID
	m.Rating = r.Rating
	m.Comment = r.Comment
	m.DateTimeCreated = r.DateTimeCreated
}
