package v1

import (
	"fmt"
	"net/http"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminStationHandler defines the interface for the moderation dashboard
type AdminStationHandler interface {
	List(ctx *gin.Context)
	SetStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// adminStationHandler struct holds the services
type adminStationHandler struct {
	adminStationService stations.AdminStationService
	logger              logger.Logger
}

// NewAdminStationHandler creates a new AdminStationHandler
func NewAdminStationHandler(adminStationService stations.AdminStationService, logger logger.Logger) AdminStationHandler {
	return &adminStationHandler{
		adminStationService: adminStationService,
		logger:              logger,
	}
}

// List returns stations in any status, newest first unless sorted otherwise
func (handler *adminStationHandler) List(ctx *gin.Context) {
	query := &stations.StationQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
	if err := bindStationQuery(ctx, query); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	list, err := handler.adminStationService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list stations", err)
		return
	}

	ctx.JSON(http.StatusOK, newStationResponses(list))
}

// SetStatus applies a moderation decision
func (handler *adminStationHandler) SetStatus(ctx *gin.Context) {
	stationID := ctx.Param("id")

	var request StatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	station, err := handler.adminStationService.SetStatus(ctx, stationID, request.Status)
	if err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to set status of station %s", stationID), err)
		return
	}

	ctx.JSON(http.StatusOK, NewStationResponse(station))
}

// DeleteByID removes a station with its reviews and photos
func (handler *adminStationHandler) DeleteByID(ctx *gin.Context) {
	stationID := ctx.Param("id")

	if err := handler.adminStationService.DeleteByID(ctx, stationID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to delete station %s", stationID), err)
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted station with id %s", stationID)})
}
