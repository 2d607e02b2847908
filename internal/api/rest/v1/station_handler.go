package v1

import (
	"fmt"
	"net/http"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"
	"github.com/splashcamper/splashcamper-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// StationHandler defines the interface for the public station directory
type StationHandler interface {
	List(ctx *gin.Context)
	Submit(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	WashLanes(ctx *gin.Context)
}

// stationHandler struct holds the services
type stationHandler struct {
	stationService  stations.StationService
	washLaneService washlanes.WashLaneService
	logger          logger.Logger
}

// NewStationHandler creates a new StationHandler
func NewStationHandler(stationService stations.StationService, washLaneService washlanes.WashLaneService, logger logger.Logger) StationHandler {
	return &stationHandler{
		stationService:  stationService,
		washLaneService: washLaneService,
		logger:          logger,
	}
}

// List returns active stations filtered by query parameters
func (handler *stationHandler) List(ctx *gin.Context) {
	query := stations.NewStationQuery()
	if err := bindStationQuery(ctx, query); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	query.Status = stations.StatusActive

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	list, err := handler.stationService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list stations", err)
		return
	}

	ctx.JSON(http.StatusOK, newStationResponses(list))
}

// Submit stores a station proposed by the signed-in user
func (handler *stationHandler) Submit(ctx *gin.Context) {
	var request StationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	user := CurrentUser(ctx)
	station, err := handler.stationService.Submit(ctx, request.ToDomain(), user.ID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to submit station", err)
		return
	}

	ctx.JSON(http.StatusCreated, NewStationResponse(station))
}

// GetByID returns one station. Stations awaiting moderation are only shown to administrators.
func (handler *stationHandler) GetByID(ctx *gin.Context) {
	stationID := ctx.Param("id")

	station, err := handler.stationService.GetByID(ctx, stationID)
	if err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to get station %s", stationID), err)
		return
	}

	if !visibleTo(ctx, station.Status) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("station with id %s not found", stationID)})
		return
	}

	ctx.JSON(http.StatusOK, NewStationResponse(station))
}

// Update replaces the editable fields of a station
func (handler *stationHandler) Update(ctx *gin.Context) {
	var request StationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	station := request.ToDomain()
	station.ID = ctx.Param("id")

	updated, err := handler.stationService.Update(ctx, station)
	if err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to update station %s", ctx.Param("id")), err)
		return
	}

	ctx.JSON(http.StatusOK, NewStationResponse(updated))
}

// WashLanes returns the resolved wash lanes of a station visible to the caller
func (handler *stationHandler) WashLanes(ctx *gin.Context) {
	stationID := ctx.Param("id")

	res, err := handler.washLaneService.Resolve(ctx, stationID)
	if err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to resolve wash lanes of %s", stationID), err)
		return
	}

	if !visibleTo(ctx, res.Status) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("station with id %s not found", stationID)})
		return
	}

	ctx.JSON(http.StatusOK, NewWashLanesResponse(res))
}

// visibleTo reports whether a station with the given status may be shown to the caller.
// Stations awaiting or failing moderation are reserved to administrators.
func visibleTo(ctx *gin.Context, status string) bool {
	if status == stations.StatusActive {
		return true
	}
	user := CurrentUser(ctx)
	return user != nil && user.IsAdmin()
}

// bindStationQuery copies directory filters from the query string
func bindStationQuery(ctx *gin.Context, query *stations.StationQuery) error {
	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}
	if stationType := ctx.Query("type"); len(stationType) > 0 {
		query.Type = stationType
	}
	if city := ctx.Query("city"); len(city) > 0 {
		query.City = city
	}
	if postalCode := ctx.Query("postalCode"); len(postalCode) > 0 {
		query.PostalCode = postalCode
	}

	for param, target := range map[string]**float64{
		"minLat": &query.MinLat,
		"maxLat": &query.MaxLat,
		"minLng": &query.MinLng,
		"maxLng": &query.MaxLng,
	} {
		raw := ctx.Query(param)
		if raw == "" {
			continue
		}
		v, ok := strutil.ConvertToFloat64(raw)
		if !ok {
			return fmt.Errorf("%s must be a number", param)
		}
		*target = &v
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}
	return nil
}
