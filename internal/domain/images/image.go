package images

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/pkg/validators"
)

var (
	// ErrNotFound is returned when no image matches the requested id.
	ErrNotFound = errors.New("image not found")
	// ErrValidation wraps field-level validation failures.
	ErrValidation = errors.New("invalid image")
	// ErrUnsupportedType is returned for files that are not photos.
	ErrUnsupportedType = errors.New("unsupported image type")
	// ErrTooLarge is returned for files above MaxSize.
	ErrTooLarge = errors.New("image too large")
)

// MaxSize is the largest accepted upload per file, in bytes
const MaxSize int64 = 10 << 20

// AllowedTypes lists the accepted file extensions
var AllowedTypes = []string{".jpg", ".jpeg", ".png", ".webp"}

// StationImage entity
type StationImage struct {
	ID              string    `validate:"required,uuid4"`
	StationID       string    `validate:"required,min=1,max=64"`
	UserID          string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=255"`
	Size            int64     `validate:"required,min=1,max=10485760"`
	Type            string    `validate:"required,oneof=.jpg .jpeg .png .webp"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating StationImage struct
func (i *StationImage) Validate() error {
	if err := validators.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// ContentType returns the MIME type stored alongside an image of the given extension
func ContentType(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// BlobName is the object key of an image in storage
func BlobName(imageID, name string) string {
	return imageID + "/" + name
}

// TypeOf returns the lowercased extension of fileName, or ErrUnsupportedType.
func TypeOf(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range AllowedTypes {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, fileName)
}
