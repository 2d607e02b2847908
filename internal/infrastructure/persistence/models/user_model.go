package models

import (
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID                string    `gorm:"primaryKey;type:varchar(36)"`
	Email             string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name              string    `gorm:"type:varchar(255)"`
	Image             string    `gorm:"type:varchar(1024)"`
	Role              string    `gorm:"not null;default:user;type:varchar(20)"`
	Provider          string    `gorm:"type:varchar(50)"`
	ProviderAccountID string    `gorm:"index;type:varchar(255)"`
	DateTimeCreated   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:                m.ID,
		Email:             m.Email,
		Name:              m.Name,
		Image:             m.Image,
		Role:              m.Role,
		Provider:          m.Provider,
		ProviderAccountID: m.ProviderAccountID,
		DateTimeCreated:   m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Name = u.Name
	m.Image = u.Image
	m.Role = u.Role
	m.Provider = u.Provider
	m.ProviderAccountID = u.ProviderAccountID
	m.DateTimeCreated = u.DateTimeCreated
}
