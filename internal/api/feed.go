package api

import (
	"log"
	"net/http"
	"time"

	"github.com/mini-septa/poller/internal/realtime/gtfsrt"
)

// FeedHandler serves the stored positions as GTFS-Realtime.
type FeedHandler struct {
	repo TrainRepository
}

// NewFeedHandler creates a new handler with the given repository
func NewFeedHandler(repo TrainRepository) *FeedHandler {
	return &FeedHandler{repo: repo}
}

// GetVehiclePositions handles GET /gtfs-rt/vehicle_positions.pb
func (h *FeedHandler) GetVehiclePositions(w http.ResponseWriter, r *http.Request) {
	trains, err := h.repo.GetAllTrains(r.Context())
	if err != nil {
		log.Printf("API: failed to build feed: %v", err)
		http.Error(w, "failed to retrieve trains", http.StatusInternalServerError)
		return
	}

	vehicles := make([]gtfsrt.Vehicle, 0, len(trains))
	for _, t := range trains {
		vehicles = append(vehicles, gtfsrt.FromStored(t))
	}

	data, err := gtfsrt.Marshal(gtfsrt.BuildFeed(vehicles, time.Now()))
	if err != nil {
		log.Printf("API: %v", err)
		http.Error(w, "failed to encode feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/x-protobuf")
	w.Header().Set("Cache-Control", "public, max-age=15")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
