//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordsRouteTemplates(t *testing.T) {
	metrics := NewMetrics()

	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())
	r.GET("/api/stations/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/stations/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `splashcamper_http_requests_total{method="GET",route="/api/stations/:id",status="200"} 2`)
	assert.NotContains(t, body, `route="/api/stations/a"`)
	assert.Contains(t, body, "go_goroutines")
}
