package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Train is one stored TrainView observation. Stop ids are nil when the stop
// name did not resolve against the catalog.
type Train struct {
	TrainNo           string    `json:"trainNo"`
	SnapshotID        string    `json:"-"`
	LineCode          string    `json:"lineCode"`
	LineName          string    `json:"lineName"`
	Service           string    `json:"service"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Heading           *float64  `json:"heading"`
	LateMinutes       *int      `json:"lateMinutes"`
	Destination       string    `json:"destination"`
	DestinationStopID *int      `json:"destinationStopId"`
	CurrentStop       string    `json:"currentStop"`
	CurrentStopID     *int      `json:"currentStopId"`
	NextStop          string    `json:"nextStop"`
	NextStopID        *int      `json:"nextStopId"`
	Source            string    `json:"source"`
	SourceStopID      *int      `json:"sourceStopId"`
	Consist           []int     `json:"consist"`
	Track             string    `json:"track"`
	TrackChange       string    `json:"trackChange"`
	PolledAtUTC       time.Time `json:"polledAtUtc"`
}

// CreateSnapshot creates a new snapshot record and returns its ID
func (db *DB) CreateSnapshot(ctx context.Context, polledAt time.Time) (string, error) {
	snapshotID := uuid.New().String()
	polledAtStr := polledAt.UTC().Format(time.RFC3339)

	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	_, err := db.conn.ExecContext(ctx,
		"INSERT INTO rt_snapshots (snapshot_id, polled_at_utc) VALUES (?, ?)",
		snapshotID, polledAtStr,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot: %w", err)
	}

	return snapshotID, nil
}

// UpsertTrains replaces the current row of every train and appends its
// history row, in one transaction.
func (db *DB) UpsertTrains(ctx context.Context, snapshotID string, polledAt time.Time, trains []Train) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	polledAtStr := polledAt.UTC().Format(time.RFC3339)

	currentStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rt_septa_train_current (
			train_no, snapshot_id, line_code, line_name, service,
			latitude, longitude, heading, late_minutes,
			destination, destination_stop_id, current_stop, current_stop_id,
			next_stop, next_stop_id, source_stop, source_stop_id,
			consist, track, track_change, polled_at_utc, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT (train_no) DO UPDATE SET
			snapshot_id = excluded.snapshot_id,
			line_code = excluded.line_code,
			line_name = excluded.line_name,
			service = excluded.service,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			heading = excluded.heading,
			late_minutes = excluded.late_minutes,
			destination = excluded.destination,
			destination_stop_id = excluded.destination_stop_id,
			current_stop = excluded.current_stop,
			current_stop_id = excluded.current_stop_id,
			next_stop = excluded.next_stop,
			next_stop_id = excluded.next_stop_id,
			source_stop = excluded.source_stop,
			source_stop_id = excluded.source_stop_id,
			consist = excluded.consist,
			track = excluded.track,
			track_change = excluded.track_change,
			polled_at_utc = excluded.polled_at_utc,
			updated_at = datetime('now')
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare current statement: %w", err)
	}
	defer currentStmt.Close()

	historyStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO rt_septa_train_history (
			train_no, snapshot_id, line_code, latitude, longitude, heading,
			late_minutes, current_stop_id, next_stop_id, polled_at_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare history statement: %w", err)
	}
	defer historyStmt.Close()

	for _, t := range trains {
		_, err := currentStmt.ExecContext(ctx,
			t.TrainNo, snapshotID, t.LineCode, t.LineName, t.Service,
			t.Latitude, t.Longitude, t.Heading, t.LateMinutes,
			t.Destination, t.DestinationStopID, t.CurrentStop, t.CurrentStopID,
			t.NextStop, t.NextStopID, t.Source, t.SourceStopID,
			joinConsist(t.Consist), t.Track, t.TrackChange, polledAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert train %s: %w", t.TrainNo, err)
		}

		_, err = historyStmt.ExecContext(ctx,
			t.TrainNo, snapshotID, t.LineCode, t.Latitude, t.Longitude, t.Heading,
			t.LateMinutes, t.CurrentStopID, t.NextStopID, polledAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to insert history %s: %w", t.TrainNo, err)
		}
	}

	return tx.Commit()
}

func joinConsist(cars []int) string {
	parts := make([]string, len(cars))
	for i, car := range cars {
		parts[i] = strconv.Itoa(car)
	}
	return strings.Join(parts, ",")
}
