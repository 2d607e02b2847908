package stations

// MergeLegacy overlays a database record onto a legacy record sharing its legacy id.
// Non-empty database fields win; nested facilities come from the database when it has them.
// The result keeps the legacy id so clients keep addressing the same record.
func MergeLegacy(legacy, db *Station) *Station {
	if legacy == nil {
		return db
	}
	merged := *legacy
	if db == nil {
		return &merged
	}

	if db.Name != "" {
		merged.Name = db.Name
	}
	if db.Type != "" {
		merged.Type = db.Type
	}
	if db.Status != "" {
		merged.Status = db.Status
	}
	if db.Address != "" {
		merged.Address = db.Address
	}
	if db.City != "" {
		merged.City = db.City
	}
	if db.PostalCode != "" {
		merged.PostalCode = db.PostalCode
	}
	if db.Latitude != 0 || db.Longitude != 0 {
		merged.Latitude = db.Latitude
		merged.Longitude = db.Longitude
	}
	if db.Description != "" {
		merged.Description = db.Description
	}
	if db.Website != "" {
		merged.Website = db.Website
	}
	if db.Phone != "" {
		merged.Phone = db.Phone
	}
	if db.Services != nil {
		merged.Services = db.Services
	}
	if db.ParkingDetails != nil {
		merged.ParkingDetails = db.ParkingDetails
	}
	if len(db.WashLanes) > 0 {
		merged.WashLanes = db.WashLanes
	}
	if !db.DateTimeUpdated.IsZero() {
		merged.DateTimeUpdated = db.DateTimeUpdated
	}

	return &merged
}
