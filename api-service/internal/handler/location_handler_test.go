package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"loc8r/api-service/internal/models"
)

type stubLocationService struct {
	summaries []models.LocationSummary
	location  *models.Location
	err       error
}

func (s *stubLocationService) NearbyLocations(_ context.Context, _, _, _ float64) ([]models.LocationSummary, error) {
	return s.summaries, s.err
}

func (s *stubLocationService) LocationByID(_ context.Context, _ string) (*models.Location, error) {
	return s.location, s.err
}

func newLocationRouter(svc LocationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewLocationHandler(svc)
	router.GET("/api/locations", h.ListByDistance)
	router.GET("/api/locations/:locationid", h.ReadOne)
	return router
}

func TestListByDistance(t *testing.T) {
	svc := &stubLocationService{summaries: []models.LocationSummary{{Name: "Starcups", Distance: 120.5}}}
	router := newLocationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/locations?lng=127.2&lat=37.0&maxDistance=200000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Starcups")
}

func TestListByDistance_MissingParams(t *testing.T) {
	router := newLocationRouter(&stubLocationService{})

	for _, query := range []string{"", "?lng=127.2", "?lng=abc&lat=37.0&maxDistance=100"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/locations"+query, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestReadOneLocation_NotFound(t *testing.T) {
	router := newLocationRouter(&stubLocationService{err: models.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/locations/abc123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Location not found")
}
