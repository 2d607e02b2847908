//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminStationHandler_List(t *testing.T) {
	service := new(MockAdminStationService)
	handler := NewAdminStationHandler(service, testutil.SetupTestLogger(t))

	pending := newActiveStation("Proposition")
	pending.Status = stations.StatusPending
	service.On("List", mock.Anything, mock.MatchedBy(func(q *stations.StationQuery) bool {
		return q.Status == stations.StatusPending && q.SortBy == "date_time_created" && q.SortOrder == "desc"
	})).Return([]*stations.Station{pending}, nil)

	c, w := newTestContext("GET", "/api/AdminStation?status=pending", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), pending.ID)
	service.AssertExpectations(t)
}

func TestAdminStationHandler_List_UnknownStatus(t *testing.T) {
	service := new(MockAdminStationService)
	handler := NewAdminStationHandler(service, testutil.SetupTestLogger(t))

	c, w := newTestContext("GET", "/api/AdminStation?status=archived", nil)
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestAdminStationHandler_SetStatus(t *testing.T) {
	service := new(MockAdminStationService)
	handler := NewAdminStationHandler(service, testutil.SetupTestLogger(t))

	st := newActiveStation("Lavage")
	service.On("SetStatus", mock.Anything, st.ID, stations.StatusActive).Return(st, nil)
	service.On("SetStatus", mock.Anything, st.ID, stations.StatusPending).Return(nil, stations.ErrInvalidTransition)

	patch := func(body string) int {
		c, w := newTestContext("PATCH", "/api/AdminStation/"+st.ID, []byte(body))
		c.Params = gin.Params{gin.Param{Key: "id", Value: st.ID}}
		handler.SetStatus(c)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, patch(`{"status":"active"}`))
	assert.Equal(t, http.StatusConflict, patch(`{"status":"pending"}`))
	assert.Equal(t, http.StatusBadRequest, patch(`{"status":"archived"}`))
	assert.Equal(t, http.StatusBadRequest, patch(`{}`))
}

func TestAdminStationHandler_DeleteByID(t *testing.T) {
	service := new(MockAdminStationService)
	handler := NewAdminStationHandler(service, testutil.SetupTestLogger(t))

	service.On("DeleteByID", mock.Anything, "s1").Return(nil)
	service.On("DeleteByID", mock.Anything, "s2").Return(stations.ErrNotFound)

	c, w := newTestContext("DELETE", "/api/AdminStation/s1", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "s1"}}
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNoContent, c.Writer.Status())

	c, w = newTestContext("DELETE", "/api/AdminStation/s2", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "s2"}}
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
