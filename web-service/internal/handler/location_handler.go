package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"loc8r/web-service/internal/client"
	"loc8r/web-service/internal/config"
	"loc8r/web-service/internal/views"
)

type LocationsAPI interface {
	ListNearby(ctx context.Context, lng, lat, maxDistance float64) ([]client.LocationSummary, error)
	GetLocation(ctx context.Context, locationID string) (*client.LocationDetail, error)
	CreateReview(ctx context.Context, locationID, authorization string, payload client.ReviewPayload) (client.CreateReviewResult, error)
}

type LocationHandler struct {
	api      LocationsAPI
	renderer *views.Renderer
	cfg      *config.Config
}

func NewLocationHandler(api LocationsAPI, renderer *views.Renderer, cfg *config.Config) *LocationHandler {
	return &LocationHandler{api: api, renderer: renderer, cfg: cfg}
}

// HomeList renders the nearby-locations list for the configured origin.
func (h *LocationHandler) HomeList(w http.ResponseWriter, r *http.Request) {
	locations, err := h.api.ListNearby(r.Context(), h.cfg.Lng, h.cfg.Lat, h.cfg.MaxDistance)

	message := ""
	rows := make([]views.LocationRow, 0, len(locations))
	switch {
	case err != nil:
		log.Printf("homepage list: %v", err)
		message = "API lookup error"
	case len(locations) == 0:
		message = "No places found nearby"
	default:
		for _, loc := range locations {
			rows = append(rows, views.LocationRow{
				ID:         loc.ID,
				Name:       loc.Name,
				Address:    loc.Address,
				Rating:     loc.Rating,
				Facilities: loc.Facilities,
				Distance:   FormatDistance(loc.Distance),
			})
		}
	}

	h.renderer.Render(w, http.StatusOK, "locations-list", views.Homepage{
		Title:      "Loc8r",
		PageHeader: views.PageHeader{Title: "Loc8r", Strapline: "Find places to work with wifi near you!"},
		Sidebar: "Looking for wifi and a seat? Loc8r helps you find places to work when out and about. " +
			"Perhaps with coffee, cake or a pint? Let Loc8r help you find the place you're looking for.",
		Locations: rows,
		Message:   message,
	})
}

// LocationInfo renders the detail page for one location.
func (h *LocationHandler) LocationInfo(w http.ResponseWriter, r *http.Request) {
	h.withLocation(w, r, func(location *client.LocationDetail, coords views.Coords) {
		reviews := make([]views.ReviewRow, 0, len(location.Reviews))
		for _, review := range location.Reviews {
			reviews = append(reviews, views.ReviewRow{
				Author:     review.Author,
				Rating:     review.Rating,
				ReviewText: review.ReviewText,
				CreatedOn:  review.CreatedOn.Format("2 January 2006"),
			})
		}

		h.renderer.Render(w, http.StatusOK, "location-info", views.LocationInfo{
			Title:      location.Name,
			PageHeader: views.PageHeader{Title: location.Name},
			Context:    "is on Loc8r because it has accessible wifi and space to sit down with your laptop and get some work done.",
			CallToAction: "If you've been and you like it - or if you don't - " +
				"please leave a review to help other people just like you.",
			Name:       location.Name,
			Address:    location.Address,
			Rating:     location.Rating,
			Facilities: location.Facilities,
			Coords:     coords,
			Reviews:    reviews,
			ID:         location.ID,
		})
	})
}

// AddReview renders the review form for one location.
func (h *LocationHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	h.withLocation(w, r, func(location *client.LocationDetail, _ views.Coords) {
		h.renderer.Render(w, http.StatusOK, "location-review-form", views.ReviewForm{
			Title:      fmt.Sprintf("Review %s on Loc8r", location.Name),
			PageHeader: views.PageHeader{Title: "Review " + location.Name},
			LocationID: location.ID,
			Error:      r.URL.Query().Get("err") == "val",
		})
	})
}

// DoAddReview posts the submitted review to the API and redirects.
func (h *LocationHandler) DoAddReview(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["locationid"]
	if err := r.ParseForm(); err != nil {
		h.showError(w, http.StatusBadRequest)
		return
	}

	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	payload := client.ReviewPayload{
		Author:     r.PostFormValue("name"),
		Rating:     rating,
		ReviewText: r.PostFormValue("review"),
	}

	if payload.Author == "" || payload.Rating == 0 || payload.ReviewText == "" {
		http.Redirect(w, r, fmt.Sprintf("/location/%s/review/new?err=val", locationID), http.StatusFound)
		return
	}

	result, err := h.api.CreateReview(r.Context(), locationID, bearerCredential(r), payload)
	if err != nil {
		log.Printf("post review: %v", err)
		h.showError(w, http.StatusInternalServerError)
		return
	}

	switch {
	case result.StatusCode == http.StatusCreated:
		http.Redirect(w, r, "/location/"+locationID, http.StatusFound)
	case result.StatusCode == http.StatusBadRequest && result.ValidationError:
		http.Redirect(w, r, fmt.Sprintf("/location/%s/review/new?err=val", locationID), http.StatusFound)
	default:
		h.showError(w, result.StatusCode)
	}
}

// withLocation fetches the location, remaps its GeoJSON coordinates for map
// display and hands off to the page-specific render step.
func (h *LocationHandler) withLocation(w http.ResponseWriter, r *http.Request, render func(*client.LocationDetail, views.Coords)) {
	locationID := mux.Vars(r)["locationid"]

	location, err := h.api.GetLocation(r.Context(), locationID)
	if err != nil {
		var upstream *client.UpstreamError
		if errors.As(err, &upstream) {
			h.showError(w, upstream.StatusCode)
			return
		}
		log.Printf("get location %s: %v", locationID, err)
		h.showError(w, http.StatusInternalServerError)
		return
	}

	coords := views.Coords{}
	if location.Coords != nil && len(location.Coords.Coordinates) >= 2 {
		coords.Lng = location.Coords.Coordinates[0]
		coords.Lat = location.Coords.Coordinates[1]
	}

	render(location, coords)
}

func (h *LocationHandler) showError(w http.ResponseWriter, status int) {
	var title, content string
	if status == http.StatusNotFound {
		title = "404, page not found"
		content = "Oh dear. Looks like you can't find this page. Sorry."
	} else {
		title = fmt.Sprintf("%d, something's gone wrong", status)
		content = "Something, somewhere, has gone just a little bit wrong."
	}

	h.renderer.Render(w, status, "generic-text", views.GenericText{Title: title, Content: content})
}

// bearerCredential pulls the caller's token from the Authorization header or
// the loc8r-token cookie. Issuing sessions is out of scope; the credential is
// forwarded to the API as-is.
func bearerCredential(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return auth
	}
	if cookie, err := r.Cookie("loc8r-token"); err == nil && cookie.Value != "" {
		return "Bearer " + cookie.Value
	}
	return ""
}

// FormatDistance renders a raw meter distance as a human unit string.
// Strictly greater than 1000 converts to kilometers with one decimal.
func FormatDistance(distance float64) string {
	if math.IsNaN(distance) {
		return "0m"
	}
	if distance > 1000 {
		return strconv.FormatFloat(distance/1000, 'f', 1, 64) + "km"
	}
	return strconv.Itoa(int(math.Floor(distance))) + "m"
}
