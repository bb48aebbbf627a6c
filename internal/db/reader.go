package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mini-septa/poller/internal/septa/decode"
)

const trainColumns = `
	train_no, snapshot_id, line_code, line_name, service,
	latitude, longitude, heading, late_minutes,
	destination, destination_stop_id, current_stop, current_stop_id,
	next_stop, next_stop_id, source_stop, source_stop_id,
	consist, track, track_change, polled_at_utc
`

// GetAllTrains returns the current row of every train, ordered by train number.
func (db *DB) GetAllTrains(ctx context.Context) ([]Train, error) {
	return db.queryTrains(ctx, `SELECT `+trainColumns+` FROM rt_septa_train_current ORDER BY train_no`)
}

// GetTrainsByLine returns the current trains on one line.
func (db *DB) GetTrainsByLine(ctx context.Context, lineCode string) ([]Train, error) {
	return db.queryTrains(ctx, `SELECT `+trainColumns+` FROM rt_septa_train_current WHERE line_code = ? ORDER BY train_no`, lineCode)
}

// GetTrain returns one train's current row, or ErrNotFound.
func (db *DB) GetTrain(ctx context.Context, trainNo string) (*Train, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT `+trainColumns+` FROM rt_septa_train_current WHERE train_no = ?`, trainNo)

	t, err := scanTrain(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("train %s: %w", trainNo, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *DB) queryTrains(ctx context.Context, query string, args ...any) ([]Train, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trains: %w", err)
	}
	defer rows.Close()

	trains := []Train{}
	for rows.Next() {
		t, err := scanTrain(rows)
		if err != nil {
			return nil, err
		}
		trains = append(trains, t)
	}

	return trains, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrain(s scanner) (Train, error) {
	var t Train
	var consist, polledAt string

	err := s.Scan(
		&t.TrainNo, &t.SnapshotID, &t.LineCode, &t.LineName, &t.Service,
		&t.Latitude, &t.Longitude, &t.Heading, &t.LateMinutes,
		&t.Destination, &t.DestinationStopID, &t.CurrentStop, &t.CurrentStopID,
		&t.NextStop, &t.NextStopID, &t.Source, &t.SourceStopID,
		&consist, &t.Track, &t.TrackChange, &polledAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return t, err
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan train: %w", err)
	}

	// The consist is stored in the same comma-joined form the API sends.
	t.Consist, err = decode.ParseIntList(consist)
	if err != nil {
		return t, fmt.Errorf("train %s: invalid stored consist: %w", t.TrainNo, err)
	}
	t.PolledAtUTC, err = time.Parse(time.RFC3339, polledAt)
	if err != nil {
		return t, fmt.Errorf("train %s: invalid polled_at_utc %q: %w", t.TrainNo, polledAt, err)
	}

	return t, nil
}
