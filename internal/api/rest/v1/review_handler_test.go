//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/reviews"
	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewHandler_ListByStation(t *testing.T) {
	service := new(MockReviewService)
	handler := NewReviewHandler(service, testutil.SetupTestLogger(t))

	list := []*reviews.Review{{ID: "r1", StationID: "station_2", Rating: 5, DateTimeCreated: time.Now()}}
	service.On("ListByStation", mock.Anything, mock.MatchedBy(func(q *reviews.ReviewQuery) bool {
		return q.StationID == "station_2" && q.Limit == 10
	})).Return(list, nil)
	service.On("Summary", mock.Anything, "station_2").Return(&reviews.Summary{StationID: "station_2", Count: 1, AverageRating: 5}, nil)

	c, w := newTestContext("GET", "/api/stations/station_2/reviews?limit=10", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "station_2"}}
	handler.ListByStation(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"summary":{"stationId":"station_2","count":1,"averageRating":5}`)
	assert.Contains(t, w.Body.String(), `"id":"r1"`)
}

func TestReviewHandler_Submit(t *testing.T) {
	service := new(MockReviewService)
	handler := NewReviewHandler(service, testutil.SetupTestLogger(t))
	user := newTestUser(users.RoleUser)

	service.On("Submit", mock.Anything, mock.MatchedBy(func(r *reviews.Review) bool {
		return r.StationID == "station_2" && r.UserID == user.ID && r.Rating == 4
	})).Return(&reviews.Review{ID: "r1", StationID: "station_2", UserID: user.ID, Rating: 4}, nil).Once()
	service.On("Submit", mock.Anything, mock.Anything).Return(nil, reviews.ErrDuplicate).Once()

	submit := func(body string) int {
		c, w := newTestContext("POST", "/api/stations/station_2/reviews", []byte(body))
		c.Params = gin.Params{gin.Param{Key: "id", Value: "station_2"}}
		c.Set(currentUserKey, user)
		handler.Submit(c)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, submit(`{"rating":4,"comment":"Propre"}`))
	assert.Equal(t, http.StatusConflict, submit(`{"rating":2}`))
	assert.Equal(t, http.StatusBadRequest, submit(`{"rating":6}`))
	assert.Equal(t, http.StatusBadRequest, submit(`{"comment":"no rating"}`))
	service.AssertExpectations(t)
}

func TestReviewHandler_Submit_InactiveStation(t *testing.T) {
	service := new(MockReviewService)
	handler := NewReviewHandler(service, testutil.SetupTestLogger(t))

	service.On("Submit", mock.Anything, mock.Anything).Return(nil, stations.ErrNotFound)

	c, w := newTestContext("POST", "/api/stations/abc/reviews", []byte(`{"rating":3}`))
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc"}}
	c.Set(currentUserKey, newTestUser(users.RoleUser))
	handler.Submit(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewHandler_DeleteByID(t *testing.T) {
	service := new(MockReviewService)
	handler := NewReviewHandler(service, testutil.SetupTestLogger(t))

	service.On("DeleteByID", mock.Anything, "r1").Return(nil)
	service.On("DeleteByID", mock.Anything, "r2").Return(reviews.ErrNotFound)

	c, _ := newTestContext("DELETE", "/api/reviews/r1", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "r1"}}
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNoContent, c.Writer.Status())

	c, w := newTestContext("DELETE", "/api/reviews/r2", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "r2"}}
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
