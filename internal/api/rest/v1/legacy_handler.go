package v1

import (
	"fmt"
	"net/http"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LegacyStationHandler serves the bundled legacy directory as stored
type LegacyStationHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type legacyStationHandler struct {
	legacy stations.LegacyStore
	logger logger.Logger
}

// NewLegacyStationHandler creates a new LegacyStationHandler
func NewLegacyStationHandler(legacy stations.LegacyStore, logger logger.Logger) LegacyStationHandler {
	return &legacyStationHandler{
		legacy: legacy,
		logger: logger,
	}
}

func (handler *legacyStationHandler) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newStationResponses(handler.legacy.List()))
}

func (handler *legacyStationHandler) GetByID(ctx *gin.Context) {
	stationID := ctx.Param("id")

	station, _, err := handler.legacy.Get(stationID)
	if err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("failed to get legacy station %s", stationID), err)
		return
	}

	ctx.JSON(http.StatusOK, NewStationResponse(station))
}
