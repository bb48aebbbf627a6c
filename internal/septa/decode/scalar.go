// Package decode converts the loosely typed values found in SEPTA API
// payloads into Go values. Every decoder reports malformed input as an
// *Error naming the raw value; none of them panic.
package decode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateTimeLayout is the fixed "YYYY-MM-DD HH:MM:SS[.fraction]" format used by
	// the Arrivals endpoint. time.Parse accepts an optional fraction after the seconds.
	DateTimeLayout = "2006-01-02 15:04:05"

	clockLayout       = "3:04PM"
	spacedClockLayout = "3:04 PM"

	// notAvailable is the token RRSchedules sends for a stop the train has not reached yet.
	notAvailable = "na"
)

// TimeOfDay is a wall-clock time without a date, as published by the upstream feed.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// NewTimeOfDay builds a TimeOfDay from its components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}
}

// String formats the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseIntList decodes a comma-separated list of integers such as a train
// consist ("872,871,858,857"). Leading and trailing empty segments are dropped,
// so "" yields an empty list; an empty segment between two values is rejected.
func ParseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")

	start, end := 0, len(parts)
	for start < end && strings.TrimSpace(parts[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(parts[end-1]) == "" {
		end--
	}

	result := make([]int, 0, end-start)
	for _, part := range parts[start:end] {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &Error{Value: part, Expected: "a comma-separated list of integers", Err: err}
		}
		result = append(result, n)
	}

	return result, nil
}

// ParseBool decodes "true" or "false" in any letter case.
func ParseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, &Error{Value: s, Expected: `"true" or "false"`}
}

// ParseFloat decodes a decimal string such as "39.954174265".
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &Error{Value: s, Expected: "a decimal number", Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &Error{Value: s, Expected: "a finite decimal number"}
	}
	return f, nil
}

// ParseClock decodes a 12-hour time written without a space before the
// meridiem marker, e.g. "11:49PM" (NextToArrive).
func ParseClock(s string) (TimeOfDay, error) {
	return parseClock(s, clockLayout, `a time like "9:08PM"`)
}

// ParseSpacedClock decodes a 12-hour time with a space before the meridiem
// marker, e.g. "9:08 pm" (RRSchedules).
func ParseSpacedClock(s string) (TimeOfDay, error) {
	return parseClock(s, spacedClockLayout, `a time like "9:08 pm"`)
}

// ParseOptionalSpacedClock is ParseSpacedClock that also accepts "na" as an
// absent value.
func ParseOptionalSpacedClock(s string) (*TimeOfDay, error) {
	if strings.EqualFold(strings.TrimSpace(s), notAvailable) {
		return nil, nil
	}

	t, err := parseClock(s, spacedClockLayout, `a time like "9:08 pm" or "na"`)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseClock(s, layout, expected string) (TimeOfDay, error) {
	// The feed mixes "pm" and "PM"; time.Parse only knows the upper-case marker.
	parsed, err := time.Parse(layout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return TimeOfDay{}, &Error{Value: s, Expected: expected, Err: err}
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
}

// ParseDateTime decodes "YYYY-MM-DD HH:MM:SS[.fraction]". The feed carries no
// zone, so the wall-clock value is returned in UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, &Error{Value: s, Expected: `a timestamp like "2023-04-11 18:30:00.000"`, Err: err}
	}
	return t, nil
}
