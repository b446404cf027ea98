package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// UpstreamError reports a non-2xx response from the API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("api returned status %d", e.StatusCode)
}

type LocationSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     int      `json:"rating"`
	Facilities []string `json:"facilities"`
	Distance   float64  `json:"distance"`
}

type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Review struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedOn  time.Time `json:"createdOn"`
}

type LocationDetail struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Rating     int       `json:"rating"`
	Facilities []string  `json:"facilities"`
	Coords     *GeoPoint `json:"coords"`
	Reviews    []Review  `json:"reviews"`
}

type ReviewPayload struct {
	Author     string `json:"author"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

// CreateReviewResult carries the upstream verdict; only transport failures are errors.
type CreateReviewResult struct {
	StatusCode      int
	ValidationError bool
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListNearby calls GET /api/locations with the given origin and radius.
func (c *Client) ListNearby(ctx context.Context, lng, lat, maxDistance float64) ([]LocationSummary, error) {
	query := url.Values{}
	query.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("maxDistance", strconv.FormatFloat(maxDistance, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/locations?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var locations []LocationSummary
	if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locations, nil
}

// GetLocation calls GET /api/locations/{id}.
func (c *Client) GetLocation(ctx context.Context, locationID string) (*LocationDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/locations/"+locationID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var location LocationDetail
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		return nil, fmt.Errorf("failed to decode location: %w", err)
	}
	return &location, nil
}

// CreateReview calls POST /api/locations/{id}/reviews, forwarding the caller's
// bearer credential when present.
func (c *Client) CreateReview(ctx context.Context, locationID, authorization string, payload ReviewPayload) (CreateReviewResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return CreateReviewResult{}, fmt.Errorf("marshal error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/locations/"+locationID+"/reviews", bytes.NewBuffer(body))
	if err != nil {
		return CreateReviewResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return CreateReviewResult{}, fmt.Errorf("failed to post review: %w", err)
	}
	defer resp.Body.Close()

	result := CreateReviewResult{StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusBadRequest {
		var apiError struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil {
			result.ValidationError = apiError.Name == "ValidationError"
		}
	}
	return result, nil
}
