package api

import (
	"net/http"
	"strconv"

	"github.com/mini-septa/poller/internal/septa/catalog"
)

// StopResponse is one catalog stop.
type StopResponse struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Aliases    []string           `json:"aliases"`
	Coordinate catalog.Coordinate `json:"coordinate"`
}

// GetStopsResponse is the JSON response structure for GET /api/stops
type GetStopsResponse struct {
	Stops []StopResponse `json:"stops"`
	Count int            `json:"count"`
}

// NearestStopResponse is the JSON response structure for GET /api/stops/nearest
type NearestStopResponse struct {
	Stop           StopResponse `json:"stop"`
	DistanceMeters float64      `json:"distanceMeters"`
}

func stopResponse(s catalog.Stop) StopResponse {
	id, _ := s.ID()
	coord, _ := s.Coordinate()
	return StopResponse{
		ID:         id,
		Name:       s.String(),
		Aliases:    s.Aliases(),
		Coordinate: coord,
	}
}

// GetStops handles GET /api/stops
// The catalog is compiled in, so the response is cacheable for a long time.
func GetStops(w http.ResponseWriter, r *http.Request) {
	stops := catalog.Stops()
	response := GetStopsResponse{
		Stops: make([]StopResponse, 0, len(stops)),
		Count: len(stops),
	}
	for _, s := range stops {
		response.Stops = append(response.Stops, stopResponse(s))
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, response)
}

// GetNearestStop handles GET /api/stops/nearest?lat=&lon=
func GetNearestStop(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, "lat and lon must be valid coordinates", map[string]interface{}{
			"lat": r.URL.Query().Get("lat"),
			"lon": r.URL.Query().Get("lon"),
		})
		return
	}

	stop, distance := catalog.NearestStop(lat, lon)
	writeJSON(w, http.StatusOK, NearestStopResponse{
		Stop:           stopResponse(stop),
		DistanceMeters: distance,
	})
}
