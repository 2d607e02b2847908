//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"
	"github.com/splashcamper/splashcamper-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	return c, w
}

func newTestUser(role string) *users.User {
	return &users.User{
		ID:              uuid.NewString(),
		Email:           role + "@splashcamper.fr",
		Role:            role,
		DateTimeCreated: time.Now(),
	}
}

func newActiveStation(name string) *stations.Station {
	return &stations.Station{
		ID:              uuid.NewString(),
		Name:            name,
		Type:            stations.TypeWash,
		Status:          stations.StatusActive,
		City:            "Nantes",
		PostalCode:      "44000",
		Latitude:        47.2184,
		Longitude:       -1.5536,
		DateTimeCreated: time.Now(),
	}
}
