//go:build unit
// +build unit

package images

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationImageValidation(t *testing.T) {
	img := &StationImage{
		ID:              uuid.NewString(),
		StationID:       uuid.NewString(),
		UserID:          uuid.NewString(),
		Name:            "piste.jpg",
		Size:            2048,
		Type:            ".jpg",
		DateTimeCreated: time.Now(),
	}
	assert.NoError(t, img.Validate())

	img.Size = 0
	err := img.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "Field: StationImage.Size, Tag: required")
}

func TestTypeOf(t *testing.T) {
	ext, err := TypeOf("Photo.JPG")
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	ext, err = TypeOf("aire.webp")
	require.NoError(t, err)
	assert.Equal(t, ".webp", ext)

	_, err = TypeOf("notes.pdf")
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestContentTypeAndBlobName(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentType(".jpeg"))
	assert.Equal(t, "image/webp", ContentType(".webp"))
	assert.Equal(t, "application/octet-stream", ContentType(".gif"))
	assert.Equal(t, "abc/piste.png", BlobName("abc", "piste.png"))
}
