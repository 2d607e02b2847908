package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/splashcamper/splashcamper-api/internal/domain/images"
	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, stations.ErrNotFound),
		errors.Is(err, reviews.ErrNotFound),
		errors.Is(err, images.ErrNotFound),
		errors.Is(err, users.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, stations.ErrValidation),
		errors.Is(err, reviews.ErrValidation),
		errors.Is(err, images.ErrValidation),
		errors.Is(err, images.ErrUnsupportedType),
		errors.Is(err, users.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, images.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, stations.ErrInvalidTransition),
		errors.Is(err, reviews.ErrDuplicate),
		errors.Is(err, users.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and answers with a status derived from it.
// Internal failures only expose the action that failed.
func respondError(ctx *gin.Context, log logger.Logger, action string, err error) {
	status := statusFor(err)
	message := fmt.Sprintf("%s: %v", action, err)
	if status == http.StatusInternalServerError {
		log.Error(action, "path", ctx.FullPath(), "error", err)
		message = action
	} else {
		log.Warn(action, "path", ctx.FullPath(), "status", status, "error", err)
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
