package images

import (
	"context"
	"mime/multipart"
)

// ImageUploadService defines methods for attaching photos to a station.
type ImageUploadService interface {
	// Upload stores every file of the form under the station.
	// It returns the metadata of the stored images.
	Upload(ctx context.Context, stationID string, form *multipart.Form, userID string) ([]*StationImage, error)
}

// ImageMetadataService defines methods for reading and removing image metadata.
type ImageMetadataService interface {
	ListByStation(ctx context.Context, stationID string) ([]*StationImage, error)
	GetByID(ctx context.Context, imageID string) (*StationImage, error)

	// DeleteByID deletes the stored object and its metadata.
	DeleteByID(ctx context.Context, imageID string) error
}

// ImageDownloadService defines methods for downloading image content.
type ImageDownloadService interface {
	DownloadByID(ctx context.Context, imageID string) ([]byte, *StationImage, error)
}

// ImageRepository defines the interface for StationImage-related operations
type ImageRepository interface {
	Create(ctx context.Context, image *StationImage) error
	ListByStation(ctx context.Context, stationID string) ([]*StationImage, error)
	GetByID(ctx context.Context, imageID string) (*StationImage, error)
	DeleteByID(ctx context.Context, imageID string) error
}

// ImageConnector is an interface for interacting with image object storage
type ImageConnector interface {
	// Upload stores the files of a form and returns one metadata record per file.
	Upload(ctx context.Context, form *multipart.Form, stationID, userID string) ([]*StationImage, error)

	// Download retrieves an object by image id and file name.
	Download(ctx context.Context, imageID, name string) ([]byte, error)

	// Delete removes an object by image id and file name.
	Delete(ctx context.Context, imageID, name string) error
}
