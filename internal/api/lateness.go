package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mini-septa/poller/internal/db"
	"github.com/mini-septa/poller/internal/septa/catalog"
)

const (
	defaultLatenessHours = 24
	maxLatenessHours     = 720
)

// LatenessRepository defines the interface for lateness statistics
type LatenessRepository interface {
	GetLateStats(ctx context.Context, lineCode string, since time.Time) ([]db.LateStat, error)
}

// LatenessHandler handles HTTP requests for per-line lateness
type LatenessHandler struct {
	repo LatenessRepository
	now  func() time.Time
}

// NewLatenessHandler creates a new handler with the given repository
func NewLatenessHandler(repo LatenessRepository) *LatenessHandler {
	return &LatenessHandler{repo: repo, now: time.Now}
}

// LatenessResponse is the JSON response structure for GET /api/lines/{code}/lateness
type LatenessResponse struct {
	Code        string        `json:"code"`
	Line        string        `json:"line"`
	Hours       int           `json:"hours"`
	Stats       []db.LateStat `json:"stats"`
	Count       int           `json:"count"`
	LastChecked time.Time     `json:"lastChecked"`
}

// GetLateness handles GET /api/lines/{code}/lateness
// Query params: hours (optional, default 24, max 720)
func (h *LatenessHandler) GetLateness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	code := chi.URLParam(r, "code")
	line, ok := catalog.ResolveLine(code)
	if !ok {
		writeError(w, http.StatusNotFound, "Line not found", map[string]interface{}{
			"code": code,
		})
		return
	}

	hours := defaultLatenessHours
	if hoursStr := r.URL.Query().Get("hours"); hoursStr != "" {
		n, err := strconv.Atoi(hoursStr)
		if err != nil || n <= 0 || n > maxLatenessHours {
			writeError(w, http.StatusBadRequest, "hours must be between 1 and 720", map[string]interface{}{
				"hours": hoursStr,
			})
			return
		}
		hours = n
	}

	now := h.now().UTC()
	stats, err := h.repo.GetLateStats(ctx, line.Code(), now.Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		log.Printf("API: failed to get lateness for %s: %v", line.Code(), err)
		writeError(w, http.StatusInternalServerError, "Failed to get lateness stats", nil)
		return
	}

	writeJSON(w, http.StatusOK, LatenessResponse{
		Code:        line.Code(),
		Line:        line.String(),
		Hours:       hours,
		Stats:       stats,
		Count:       len(stats),
		LastChecked: now,
	})
}
