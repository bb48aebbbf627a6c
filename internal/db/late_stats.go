package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mini-septa/poller/internal/metrics"
)

// DelayedThresholdMinutes is the lateness above which a train counts as delayed.
const DelayedThresholdMinutes = 5

// LateObservation is one train's reported lateness on a line.
type LateObservation struct {
	LineCode    string
	LateMinutes int
}

// LateStat is one hour of lateness statistics for a line.
type LateStat struct {
	LineCode         string    `json:"lineCode"`
	HourBucket       time.Time `json:"hourBucket"`
	ObservationCount int       `json:"observationCount"`
	MeanMinutes      float64   `json:"meanMinutes"`
	StdDevMinutes    float64   `json:"stdDevMinutes"`
	DelayedCount     int       `json:"delayedCount"`
	OnTimeCount      int       `json:"onTimeCount"`
	MaxLateMinutes   int       `json:"maxLateMinutes"`
}

// UpdateLateStats folds observations into the stats row of the hour
// containing observedAt.
func (db *DB) UpdateLateStats(ctx context.Context, observedAt time.Time, observations []LateObservation) error {
	byLine := make(map[string][]int)
	for _, obs := range observations {
		if obs.LineCode == "" {
			continue
		}
		byLine[obs.LineCode] = append(byLine[obs.LineCode], obs.LateMinutes)
	}
	if len(byLine) == 0 {
		return nil
	}

	hourBucket := observedAt.UTC().Truncate(time.Hour).Format(time.RFC3339)

	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for lineCode, lates := range byLine {
		var count, delayedCount, onTimeCount, maxLate int
		var mean, m2 float64

		err := tx.QueryRowContext(ctx, `
			SELECT observation_count, late_mean_minutes, late_m2,
				delayed_count, on_time_count, max_late_minutes
			FROM stats_late_hourly
			WHERE line_code = ? AND hour_bucket = ?
		`, lineCode, hourBucket).Scan(&count, &mean, &m2, &delayedCount, &onTimeCount, &maxLate)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to read late stats for %s: %w", lineCode, err)
		}

		state := metrics.Resume(count, mean, m2)
		for _, late := range lates {
			state.Update(float64(late))
			if late > DelayedThresholdMinutes {
				delayedCount++
			} else {
				onTimeCount++
			}
			if late > maxLate {
				maxLate = late
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO stats_late_hourly (line_code, hour_bucket, observation_count,
				late_mean_minutes, late_m2, delayed_count, on_time_count, max_late_minutes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (line_code, hour_bucket) DO UPDATE SET
				observation_count = excluded.observation_count,
				late_mean_minutes = excluded.late_mean_minutes,
				late_m2 = excluded.late_m2,
				delayed_count = excluded.delayed_count,
				on_time_count = excluded.on_time_count,
				max_late_minutes = excluded.max_late_minutes
		`, lineCode, hourBucket, state.Count, state.Mean, state.M2, delayedCount, onTimeCount, maxLate)
		if err != nil {
			return fmt.Errorf("failed to upsert late stats for %s: %w", lineCode, err)
		}
	}

	return tx.Commit()
}

// GetLateStats returns the hourly stats of a line since the given time,
// oldest first.
func (db *DB) GetLateStats(ctx context.Context, lineCode string, since time.Time) ([]LateStat, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT line_code, hour_bucket, observation_count, late_mean_minutes, late_m2,
			delayed_count, on_time_count, max_late_minutes
		FROM stats_late_hourly
		WHERE line_code = ? AND hour_bucket >= ?
		ORDER BY hour_bucket
	`, lineCode, since.UTC().Truncate(time.Hour).Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to query late stats: %w", err)
	}
	defer rows.Close()

	stats := []LateStat{}
	for rows.Next() {
		var s LateStat
		var bucket string
		var m2 float64
		if err := rows.Scan(&s.LineCode, &bucket, &s.ObservationCount, &s.MeanMinutes, &m2,
			&s.DelayedCount, &s.OnTimeCount, &s.MaxLateMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan late stats: %w", err)
		}
		s.HourBucket, err = time.Parse(time.RFC3339, bucket)
		if err != nil {
			return nil, fmt.Errorf("invalid hour bucket %q: %w", bucket, err)
		}
		s.StdDevMinutes = metrics.Resume(s.ObservationCount, s.MeanMinutes, m2).GetStdDev()
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
