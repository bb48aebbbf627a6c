// Package catalog is the fixed vocabulary of SEPTA Regional Rail stops and
// lines. Free-text names from the API resolve to catalog values; names the
// catalog does not know resolve to an explicit unrecognized value that keeps
// the original text.
//
// All tables are built at package initialization and never modified, so
// every function here is safe for concurrent use.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/mini-septa/poller/internal/septa/decode"
)

// StopCode identifies a recognized stop. UnknownStop marks a name that did
// not match the catalog.
type StopCode int

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type stopInfo struct {
	id    int
	coord Coordinate
	names []string
}

// UnknownStopError is returned when catalog data is requested for a stop
// name that did not resolve.
type UnknownStopError struct {
	Name string
}

func (e *UnknownStopError) Error() string {
	return fmt.Sprintf("unknown regional rail station: %s", e.Name)
}

// Stop is a resolved stop. Raw is set only when Code is UnknownStop.
type Stop struct {
	Code StopCode
	Raw  string
}

var stopNames = func() *decode.Table[Stop] {
	table := decode.NewTable[Stop]()
	for code := UnknownStop + 1; code < stopCodeCount; code++ {
		table.Add(Stop{Code: code}, stopTable[code].names...)
	}
	return table
}()

func unrecognizedStop(text string) Stop {
	return Stop{Code: UnknownStop, Raw: text}
}

// StopFor returns the recognized stop for code.
func StopFor(code StopCode) Stop {
	return Stop{Code: code}
}

// ResolveStop maps a station name to its stop. Matching ignores case and
// surrounding whitespace. Unmatched names are not an error: they yield an
// unrecognized Stop carrying the trimmed text.
func ResolveStop(name string) Stop {
	stop, _ := decode.Enum(name, stopNames, unrecognizedStop)
	return stop
}

// DecodeOptionalStop resolves a raw JSON field that may be null, missing or
// a station name.
func DecodeOptionalStop(raw json.RawMessage) (*Stop, error) {
	return decode.OptionalEnum(raw, stopNames, unrecognizedStop)
}

// Stops returns every recognized stop in catalog order.
func Stops() []Stop {
	return stopNames.Values()
}

func (s Stop) Recognized() bool {
	return s.Code > UnknownStop && s.Code < stopCodeCount
}

// String returns the canonical display name, or the original text for an
// unrecognized stop.
func (s Stop) String() string {
	if !s.Recognized() {
		return s.Raw
	}
	return stopTable[s.Code].names[0]
}

// Aliases returns every accepted spelling, canonical name first.
func (s Stop) Aliases() []string {
	if !s.Recognized() {
		return nil
	}
	names := stopTable[s.Code].names
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ID returns SEPTA's numeric stop id (the GTFS stop_id).
func (s Stop) ID() (int, error) {
	if !s.Recognized() {
		return 0, &UnknownStopError{Name: s.Raw}
	}
	return stopTable[s.Code].id, nil
}

// Coordinate returns the stop's position.
func (s Stop) Coordinate() (Coordinate, error) {
	if !s.Recognized() {
		return Coordinate{}, &UnknownStopError{Name: s.Raw}
	}
	return stopTable[s.Code].coord, nil
}

func (s *Stop) UnmarshalText(text []byte) error {
	*s = ResolveStop(string(text))
	return nil
}

func (s Stop) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
