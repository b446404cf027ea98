package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loc8r/api-service/internal/models"
)

type LocationService interface {
	NearbyLocations(ctx context.Context, lng, lat, maxDistance float64) ([]models.LocationSummary, error)
	LocationByID(ctx context.Context, id string) (*models.Location, error)
}

type LocationHandler struct {
	service LocationService
}

func NewLocationHandler(service LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// ListByDistance handles GET /api/locations?lng=&lat=&maxDistance=.
func (h *LocationHandler) ListByDistance(c *gin.Context) {
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	maxDistance, errDist := strconv.ParseFloat(c.Query("maxDistance"), 64)
	if errLng != nil || errLat != nil || errDist != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "lng, lat and maxDistance query parameters are all required"})
		return
	}

	locations, err := h.service.NearbyLocations(c.Request.Context(), lng, lat, maxDistance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error searching locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// ReadOne handles GET /api/locations/:locationid.
func (h *LocationHandler) ReadOne(c *gin.Context) {
	location, err := h.service.LocationByID(c.Request.Context(), c.Param("locationid"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid location id"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Location not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error reading location"})
		}
		return
	}

	c.JSON(http.StatusOK, location)
}
