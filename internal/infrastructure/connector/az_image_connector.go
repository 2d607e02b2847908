package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/httputil"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/google/uuid"
)

type azureImageConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureImageConnector creates an ImageConnector backed by one Azure Blob container.
// The container is created when missing.
func NewAzureImageConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (images.ImageConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blob connector settings: %w", err)
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &azureImageConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (c *azureImageConnector) Upload(ctx context.Context, form *multipart.Form, stationID, userID string) ([]*images.StationImage, error) {
	if form == nil || len(form.File[httputil.FilesField]) == 0 {
		return nil, fmt.Errorf("%w: no files in form field %q", images.ErrValidation, httputil.FilesField)
	}

	var uploaded []*images.StationImage
	for _, header := range form.File[httputil.FilesField] {
		img, err := c.uploadOne(ctx, header, stationID, userID)
		if err != nil {
			c.rollback(ctx, uploaded)
			return nil, err
		}
		uploaded = append(uploaded, img)
	}

	return uploaded, nil
}

func (c *azureImageConnector) uploadOne(ctx context.Context, header *multipart.FileHeader, stationID, userID string) (*images.StationImage, error) {
	ext, err := images.TypeOf(header.Filename)
	if err != nil {
		return nil, err
	}
	if header.Size > images.MaxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", images.ErrTooLarge, header.Filename, header.Size)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", header.Filename, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", header.Filename, err)
	}

	img := &images.StationImage{
		ID:              uuid.NewString(),
		StationID:       stationID,
		UserID:          userID,
		Name:            header.Filename,
		Size:            int64(buf.Len()),
		Type:            ext,
		DateTimeCreated: time.Now(),
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	blobName := images.BlobName(img.ID, img.Name)
	_, err = c.client.UploadBuffer(ctx, c.containerName, blobName, buf.Bytes(), &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(images.ContentType(ext))},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image %s: %w", blobName, err)
	}

	c.logger.Info("Uploaded image", "blob", blobName, "station", stationID, "size", img.Size)
	return img, nil
}

func (c *azureImageConnector) rollback(ctx context.Context, uploaded []*images.StationImage) {
	for _, img := range uploaded {
		if err := c.Delete(ctx, img.ID, img.Name); err != nil {
			c.logger.Warn("Failed to roll back uploaded image", "id", img.ID, "error", err)
		}
	}
}

func (c *azureImageConnector) Download(ctx context.Context, imageID, name string) ([]byte, error) {
	blobName := images.BlobName(imageID, name)

	resp, err := c.client.DownloadStream(ctx, c.containerName, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("blob %s: %w", blobName, images.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download image %s: %w", blobName, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", blobName, err)
	}

	c.logger.Info("Downloaded image", "blob", blobName)
	return buf.Bytes(), nil
}

func (c *azureImageConnector) Delete(ctx context.Context, imageID, name string) error {
	blobName := images.BlobName(imageID, name)

	_, err := c.client.DeleteBlob(ctx, c.containerName, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return fmt.Errorf("blob %s: %w", blobName, images.ErrNotFound)
		}
		return fmt.Errorf("failed to delete image %s: %w", blobName, err)
	}

	c.logger.Info("Deleted image", "blob", blobName)
	return nil
}
