package v1

import (
	"fmt"
	"net/http"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ImageHandler defines the interface for station photos
type ImageHandler interface {
	Upload(ctx *gin.Context)
	ListByStation(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// imageHandler struct holds the services
type imageHandler struct {
	imageUploadService   images.ImageUploadService
	imageMetadataService images.ImageMetadataService
	imageDownloadService images.ImageDownloadService
	logger               logger.Logger
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageUploadService images.ImageUploadService, imageMetadataService images.ImageMetadataService, imageDownloadService images.ImageDownloadService, logger logger.Logger) ImageHandler {
	return &imageHandler{
		imageUploadService:   imageUploadService,
		imageMetadataService: imageMetadataService,
		imageDownloadService: imageDownloadService,
		logger:               logger,
	}
}

// Upload stores the photos of the "files" form field
func (handler *imageHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "invalid form data")
		return
	}

	uploaded, err := handler.imageUploadService.Upload(ctx, ctx.Param("id"), form, CurrentUser(ctx).ID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to upload images", err)
		return
	}

	ctx.JSON(http.StatusCreated, newStationImageResponses(uploaded))
}

// ListByStation returns the photo metadata of a station
func (handler *imageHandler) ListByStation(ctx *gin.Context) {
	list, err := handler.imageMetadataService.ListByStation(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "failed to list images", err)
		return
	}

	ctx.JSON(http.StatusOK, newStationImageResponses(list))
}

// DownloadByID streams a photo with its image content type
func (handler *imageHandler) DownloadByID(ctx *gin.Context) {
	imageID := ctx.Param("id")

	content, img, err := handler.imageDownloadService.DownloadByID(ctx, imageID)
	if err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("could not download image with id %s", imageID), err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", img.Name))
	ctx.Header("Cache-Control", "public, max-age=86400")
	ctx.Data(http.StatusOK, images.ContentType(img.Type), content)
}

// DeleteByID removes a photo and its metadata
func (handler *imageHandler) DeleteByID(ctx *gin.Context) {
	imageID := ctx.Param("id")

	if err := handler.imageMetadataService.DeleteByID(ctx, imageID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to delete image %s", imageID), err)
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted image with id %s", imageID)})
}
