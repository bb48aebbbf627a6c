package septa

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mini-septa/poller/internal/db"
	"github.com/mini-septa/poller/internal/septa/catalog"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	trainsPolled = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "septa_trains_polled",
		Help: "Number of trains in the last successful TrainView poll",
	})
	unresolvedStopCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "septa_unresolved_stop_count",
		Help: "Number of polled stop names that did not match the catalog",
	})
)

func init() {
	prometheus.MustRegister(trainsPolled, unresolvedStopCount)
}

// TrainSource supplies live train positions.
type TrainSource interface {
	TrainView(ctx context.Context) ([]Train, error)
}

// Poller stores TrainView snapshots in the database.
type Poller struct {
	db     *db.DB
	source TrainSource
	now    func() time.Time
}

// NewPoller creates a new TrainView poller
func NewPoller(database *db.DB, source TrainSource) *Poller {
	return &Poller{
		db:     database,
		source: source,
		now:    time.Now,
	}
}

// Poll fetches TrainView once and records the result. An upstream
// application error is logged and swallowed so the polling loop keeps going.
func (p *Poller) Poll(ctx context.Context) error {
	polledAt := p.now().UTC()

	trains, err := p.source.TrainView(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			log.Printf("SEPTA: TrainView returned an error: %s", apiErr.Message)
			return nil
		}
		return fmt.Errorf("failed to fetch train view: %w", err)
	}

	if len(trains) == 0 {
		log.Println("SEPTA: no trains reported")
		return nil
	}

	snapshotID, err := p.db.CreateSnapshot(ctx, polledAt)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	rows := make([]db.Train, 0, len(trains))
	observations := make([]db.LateObservation, 0, len(trains))
	for _, t := range trains {
		rows = append(rows, toRow(t))
		if t.Late != nil {
			observations = append(observations, db.LateObservation{
				LineCode:    t.Line.Code(),
				LateMinutes: *t.Late,
			})
		}
	}

	if err := p.db.UpsertTrains(ctx, snapshotID, polledAt, rows); err != nil {
		return fmt.Errorf("failed to write trains: %w", err)
	}

	if err := p.db.UpdateLateStats(ctx, polledAt, observations); err != nil {
		// Non-fatal: positions are already stored
		log.Printf("SEPTA: failed to update late stats: %v", err)
	}

	trainsPolled.Set(float64(len(rows)))
	log.Printf("SEPTA: polled %d trains", len(rows))
	return nil
}

func toRow(t Train) db.Train {
	return db.Train{
		TrainNo:           t.TrainNumber,
		LineCode:          t.Line.Code(),
		LineName:          t.Line.String(),
		Service:           string(t.Service),
		Latitude:          t.Latitude,
		Longitude:         t.Longitude,
		Heading:           t.Heading,
		LateMinutes:       t.Late,
		Destination:       t.Destination.String(),
		DestinationStopID: stopID(t.Destination),
		CurrentStop:       t.CurrentStop.String(),
		CurrentStopID:     stopID(t.CurrentStop),
		NextStop:          t.NextStop.String(),
		NextStopID:        stopID(t.NextStop),
		Source:            t.Source.String(),
		SourceStopID:      stopID(t.Source),
		Consist:           t.Consist,
		Track:             t.Track,
		TrackChange:       t.TrackChange,
	}
}

// stopID returns nil for a stop the catalog does not know. Upstream text is
// logged rather than used as a metric label.
func stopID(s catalog.Stop) *int {
	id, err := s.ID()
	if err != nil {
		unresolvedStopCount.Inc()
		log.Printf("SEPTA: unresolved stop %q", s.Raw)
		return nil
	}
	return &id
}
