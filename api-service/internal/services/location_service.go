package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"loc8r/api-service/internal/models"
	"loc8r/api-service/internal/utils"
)

const (
	nearbyLimit      = 10
	locationCacheTTL = 5 * time.Minute
)

func locationCacheKey(id string) string {
	return fmt.Sprintf("location:%s", id)
}

type LocationService struct {
	repo  LocationRepository
	cache *utils.RedisClient
}

func NewLocationService(repo LocationRepository, cache *utils.RedisClient) *LocationService {
	return &LocationService{repo: repo, cache: cache}
}

// NearbyLocations returns summaries sorted by distance from the origin point.
func (s *LocationService) NearbyLocations(ctx context.Context, lng, lat, maxDistance float64) ([]models.LocationSummary, error) {
	return s.repo.FindNearby(ctx, lng, lat, maxDistance, nearbyLimit)
}

// LocationByID reads one location, via the short-TTL cache when possible.
// Cache failures degrade to plain repository reads.
func (s *LocationService) LocationByID(ctx context.Context, id string) (*models.Location, error) {
	locID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	if s.cache != nil {
		var cached models.Location
		err := s.cache.Get(ctx, locationCacheKey(id), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, utils.ErrCacheMiss) {
			log.Printf("failed to read cached location %s: %v", id, err)
		}
	}

	location, err := s.repo.FindByID(ctx, locID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, locationCacheKey(id), location, locationCacheTTL); err != nil {
			log.Printf("failed to cache location %s: %v", id, err)
		}
	}
	return location, nil
}
