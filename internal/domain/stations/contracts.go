package stations

import "context"

// StationService defines the public directory operations.
type StationService interface {
	// Submit stores a user-proposed station in pending status.
	Submit(ctx context.Context, station *Station, userID string) (*Station, error)

	// List returns stations matching the query.
	List(ctx context.Context, query *StationQuery) ([]*Station, error)

	// GetByID returns a database station, or a legacy record merged with its imported row
	// when id carries the legacy prefix.
	GetByID(ctx context.Context, stationID string) (*Station, error)

	// Update replaces the editable fields of a database station.
	Update(ctx context.Context, station *Station) (*Station, error)
}

// AdminStationService defines the moderation operations of the admin dashboard.
type AdminStationService interface {
	// List returns stations in any status, filtered by the query.
	List(ctx context.Context, query *StationQuery) ([]*Station, error)

	// SetStatus moves a station through the moderation flow.
	SetStatus(ctx context.Context, stationID, status string) (*Station, error)

	// DeleteByID removes a station together with its facilities, lanes, reviews and images.
	DeleteByID(ctx context.Context, stationID string) error
}

// StationRepository defines the interface for Station-related operations
type StationRepository interface {
	Create(ctx context.Context, station *Station) error
	List(ctx context.Context, query *StationQuery) ([]*Station, error)
	GetByID(ctx context.Context, stationID string) (*Station, error)
	GetByLegacyID(ctx context.Context, legacyID string) (*Station, error)
	UpdateByID(ctx context.Context, station *Station) error
	UpdateStatus(ctx context.Context, stationID, status string) error
	DeleteByID(ctx context.Context, stationID string) error
}

// LegacyStore serves the bundled legacy station records.
type LegacyStore interface {
	// List returns every legacy record.
	List() []*Station

	// Get returns the record for a legacy id together with its raw JSON document.
	Get(legacyID string) (*Station, []byte, error)
}
