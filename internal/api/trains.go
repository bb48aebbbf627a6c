// Package api serves stored SEPTA train positions, the station catalog and
// lateness statistics over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mini-septa/poller/internal/db"
	"github.com/mini-septa/poller/internal/septa/catalog"
)

// TrainRepository defines the interface for train data operations
type TrainRepository interface {
	GetAllTrains(ctx context.Context) ([]db.Train, error)
	GetTrainsByLine(ctx context.Context, lineCode string) ([]db.Train, error)
	GetTrain(ctx context.Context, trainNo string) (*db.Train, error)
}

// TrainHandler handles HTTP requests for train data
type TrainHandler struct {
	repo TrainRepository
}

// NewTrainHandler creates a new handler with the given repository
func NewTrainHandler(repo TrainRepository) *TrainHandler {
	return &TrainHandler{repo: repo}
}

// GetAllTrainsResponse is the JSON response structure for GET /api/trains
type GetAllTrainsResponse struct {
	Trains   []db.Train `json:"trains"`
	Count    int        `json:"count"`
	PolledAt time.Time  `json:"polledAt"`
}

// ErrorResponse is the JSON error response structure
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// GetAllTrains handles GET /api/trains
// Returns all current trains, or those of one line when ?line= names a
// line code or line name.
func (h *TrainHandler) GetAllTrains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineParam := r.URL.Query().Get("line")

	var trains []db.Train
	var err error

	if lineParam != "" {
		line, ok := catalog.ResolveLine(lineParam)
		if !ok {
			writeError(w, http.StatusBadRequest, "Unknown line", map[string]interface{}{
				"line": lineParam,
			})
			return
		}
		trains, err = h.repo.GetTrainsByLine(ctx, line.Code())
	} else {
		trains, err = h.repo.GetAllTrains(ctx)
	}

	if err != nil {
		log.Printf("API: failed to retrieve trains: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve trains", map[string]interface{}{
			"internal": err.Error(),
		})
		return
	}

	response := GetAllTrainsResponse{
		Trains:   trains,
		Count:    len(trains),
		PolledAt: latestPoll(trains),
	}

	// Cache for 15 seconds (half of the 30s polling interval)
	w.Header().Set("Cache-Control", "public, max-age=15, stale-while-revalidate=10")
	w.Header().Set("Vary", "Accept-Encoding")
	writeJSON(w, http.StatusOK, response)
}

// GetTrain handles GET /api/trains/{trainNo}
func (h *TrainHandler) GetTrain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trainNo := chi.URLParam(r, "trainNo")

	if trainNo == "" {
		writeError(w, http.StatusBadRequest, "trainNo parameter is required", nil)
		return
	}

	train, err := h.repo.GetTrain(ctx, trainNo)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Train not found", map[string]interface{}{
			"trainNo": trainNo,
		})
		return
	}
	if err != nil {
		log.Printf("API: failed to retrieve train %s: %v", trainNo, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve train", map[string]interface{}{
			"internal": err.Error(),
		})
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=10, stale-while-revalidate=5")
	w.Header().Set("Vary", "Accept-Encoding")
	writeJSON(w, http.StatusOK, train)
}

// latestPoll is the newest observation time, or now for an empty set.
func latestPoll(trains []db.Train) time.Time {
	var latest time.Time
	for _, t := range trains {
		if t.PolledAtUTC.After(latest) {
			latest = t.PolledAtUTC
		}
	}
	if latest.IsZero() {
		return time.Now().UTC()
	}
	return latest
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, details map[string]interface{}) {
	writeJSON(w, status, ErrorResponse{Error: message, Details: details})
}
