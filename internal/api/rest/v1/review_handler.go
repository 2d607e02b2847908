package v1

import (
	"fmt"
	"net/http"

	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"
	"github.com/splashcamper/splashcamper-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ReviewHandler defines the interface for station reviews
type ReviewHandler interface {
	ListByStation(ctx *gin.Context)
	Submit(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// reviewHandler struct holds the services
type reviewHandler struct {
	reviewService reviews.ReviewService
	logger        logger.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService reviews.ReviewService, logger logger.Logger) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// ListByStation returns the reviews of a station together with its rating summary
func (handler *reviewHandler) ListByStation(ctx *gin.Context) {
	stationID := ctx.Param("id")

	query := reviews.NewReviewQuery(stationID)
	if minRating := ctx.Query("minRating"); len(minRating) > 0 {
		query.MinRating = strutil.ConvertToInt(minRating)
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	list, err := handler.reviewService.ListByStation(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list reviews", err)
		return
	}

	summary, err := handler.reviewService.Summary(ctx, stationID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to summarize reviews", err)
		return
	}

	ctx.JSON(http.StatusOK, NewReviewListResponse(summary, list))
}

// Submit stores the signed-in user's review of a station
func (handler *reviewHandler) Submit(ctx *gin.Context) {
	var request ReviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	review, err := handler.reviewService.Submit(ctx, &reviews.Review{
		StationID: ctx.Param("id"),
		UserID:    CurrentUser(ctx).ID,
		Rating:    request.Rating,
		Comment:   request.Comment,
	})
	if err != nil {
		respondError(ctx, handler.logger, "failed to submit review", err)
		return
	}

	ctx.JSON(http.StatusCreated, NewReviewResponse(review))
}

// DeleteByID removes a review
func (handler *reviewHandler) DeleteByID(ctx *gin.Context) {
	reviewID := ctx.Param("id")

	if err := handler.reviewService.DeleteByID(ctx, reviewID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to delete review %s", reviewID), err)
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted review with id %s", reviewID)})
}
