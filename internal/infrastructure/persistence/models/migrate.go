package models

import (
	"fmt"

	"gorm.io/gorm"
)

// All returns every model in dependency order
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&StationModel{},
		&ServiceModel{},
		&ParkingDetailsModel{},
		&WashLaneModel{},
		&ReviewModel{},
		&StationImageModel{},
	}
}

// AutoMigrate creates or updates the schema of every model
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
