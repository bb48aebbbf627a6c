package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store is everything the API reads. *db.DB satisfies it.
type Store interface {
	TrainRepository
	LatenessRepository
	Ping(ctx context.Context) error
}

// NewRouter wires every endpoint. Middlewares are installed ahead of the
// routes, as chi requires.
func NewRouter(store Store, middlewares ...func(http.Handler) http.Handler) chi.Router {
	trainHandler := NewTrainHandler(store)
	latenessHandler := NewLatenessHandler(store)
	feedHandler := NewFeedHandler(store)

	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/health", healthHandler(store))

	r.Get("/api/trains", trainHandler.GetAllTrains)
	r.Get("/api/trains/{trainNo}", trainHandler.GetTrain)
	r.Get("/api/stops", GetStops)
	r.Get("/api/stops/nearest", GetNearestStop)
	r.Get("/api/lines/{code}/lateness", latenessHandler.GetLateness)

	r.Get("/gtfs-rt/vehicle_positions.pb", feedHandler.GetVehiclePositions)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// healthHandler reports database connectivity.
func healthHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":    "error",
				"database":  "disconnected",
				"timestamp": time.Now().UTC(),
				"error":     err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"database":  "connected",
			"timestamp": time.Now().UTC(),
		})
	}
}
