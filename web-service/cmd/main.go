package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"loc8r/web-service/internal/client"
	"loc8r/web-service/internal/config"
	"loc8r/web-service/internal/handler"
	"loc8r/web-service/internal/views"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	apiClient := client.NewClient(cfg.APIBaseURL)
	renderer := views.NewRenderer()
	locationHandler := handler.NewLocationHandler(apiClient, renderer, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/", locationHandler.HomeList).Methods(http.MethodGet)
	router.HandleFunc("/location/{locationid}", locationHandler.LocationInfo).Methods(http.MethodGet)
	router.HandleFunc("/location/{locationid}/review/new", locationHandler.AddReview).Methods(http.MethodGet)
	router.HandleFunc("/location/{locationid}/review/new", locationHandler.DoAddReview).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Loc8r web front-end running on %s (API at %s)", cfg.Addr, cfg.APIBaseURL)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
