// Package static cross-checks the compiled station catalog against a
// published rail GTFS feed.
package static

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/mini-septa/poller/internal/septa/catalog"
	"github.com/mini-septa/poller/internal/static/gtfs"
)

// coordinateTolerance is in degrees, roughly 10 cm.
const coordinateTolerance = 1e-6

// Mismatch is one catalog entry that disagrees with the feed.
type Mismatch struct {
	StopID   int
	Field    string
	Catalog  string
	Feed     string
	Distance float64 // metres, coordinate mismatches only
}

// Report is the outcome of an audit.
type Report struct {
	// MissingStops are catalog ids absent from stops.txt.
	MissingStops []int
	// ExtraStops are stops.txt ids the catalog does not know.
	ExtraStops []string
	// UnresolvedNames are stops.txt names that do not resolve to any stop.
	UnresolvedNames []string
	Mismatches      []Mismatch
	MissingLines    []string
	ExtraLines      []string
}

// OK reports whether the catalog and the feed agree completely.
func (r Report) OK() bool {
	return len(r.MissingStops) == 0 &&
		len(r.ExtraStops) == 0 &&
		len(r.UnresolvedNames) == 0 &&
		len(r.Mismatches) == 0 &&
		len(r.MissingLines) == 0 &&
		len(r.ExtraLines) == 0
}

// AuditCatalog compares every recognized stop (id, display name,
// coordinate) and every line code with the feed.
func AuditCatalog(data *gtfs.Data) Report {
	var report Report

	feedStops := make(map[int]gtfs.Stop, len(data.Stops))
	for _, s := range data.Stops {
		id, err := strconv.Atoi(s.StopID)
		if err != nil {
			report.ExtraStops = append(report.ExtraStops, s.StopID)
			continue
		}
		feedStops[id] = s

		if !catalog.ResolveStop(s.StopName).Recognized() {
			report.UnresolvedNames = append(report.UnresolvedNames, s.StopName)
		}
	}

	known := make(map[int]bool)
	for _, stop := range catalog.Stops() {
		id, _ := stop.ID()
		known[id] = true

		fs, ok := feedStops[id]
		if !ok {
			report.MissingStops = append(report.MissingStops, id)
			continue
		}

		if fs.StopName != stop.String() {
			report.Mismatches = append(report.Mismatches, Mismatch{
				StopID:  id,
				Field:   "name",
				Catalog: stop.String(),
				Feed:    fs.StopName,
			})
		}

		coord, _ := stop.Coordinate()
		if math.Abs(coord.Lat-fs.StopLat) > coordinateTolerance || math.Abs(coord.Lon-fs.StopLon) > coordinateTolerance {
			report.Mismatches = append(report.Mismatches, Mismatch{
				StopID:   id,
				Field:    "coordinate",
				Catalog:  fmt.Sprintf("%.7f,%.7f", coord.Lat, coord.Lon),
				Feed:     fmt.Sprintf("%.7f,%.7f", fs.StopLat, fs.StopLon),
				Distance: catalog.Haversine(coord.Lat, coord.Lon, fs.StopLat, fs.StopLon),
			})
		}
	}

	for id, fs := range feedStops {
		if !known[id] {
			report.ExtraStops = append(report.ExtraStops, fs.StopID)
		}
	}

	feedRoutes := make(map[string]bool, len(data.Routes))
	for _, r := range data.Routes {
		feedRoutes[r.RouteID] = true
	}
	codes := make(map[string]bool)
	for _, line := range catalog.Lines() {
		codes[line.Code()] = true
		if !feedRoutes[line.Code()] {
			report.MissingLines = append(report.MissingLines, line.Code())
		}
	}
	for id := range feedRoutes {
		if !codes[id] {
			report.ExtraLines = append(report.ExtraLines, id)
		}
	}

	sort.Ints(report.MissingStops)
	sort.Strings(report.ExtraStops)
	sort.Strings(report.UnresolvedNames)
	sort.Strings(report.MissingLines)
	sort.Strings(report.ExtraLines)
	sort.Slice(report.Mismatches, func(i, j int) bool {
		if report.Mismatches[i].StopID != report.Mismatches[j].StopID {
			return report.Mismatches[i].StopID < report.Mismatches[j].StopID
		}
		return report.Mismatches[i].Field < report.Mismatches[j].Field
	})

	return report
}

// Write prints a human-readable report.
func (r Report) Write(w io.Writer) {
	if r.OK() {
		fmt.Fprintln(w, "catalog matches feed")
		return
	}

	for _, id := range r.MissingStops {
		fmt.Fprintf(w, "missing stop: %d\n", id)
	}
	for _, id := range r.ExtraStops {
		fmt.Fprintf(w, "extra stop in feed: %s\n", id)
	}
	for _, name := range r.UnresolvedNames {
		fmt.Fprintf(w, "unresolved feed name: %q\n", name)
	}
	for _, m := range r.Mismatches {
		if m.Field == "coordinate" {
			fmt.Fprintf(w, "stop %d coordinate: catalog %s, feed %s (%.0f m)\n", m.StopID, m.Catalog, m.Feed, m.Distance)
			continue
		}
		fmt.Fprintf(w, "stop %d %s: catalog %q, feed %q\n", m.StopID, m.Field, m.Catalog, m.Feed)
	}
	for _, code := range r.MissingLines {
		fmt.Fprintf(w, "missing line: %s\n", code)
	}
	for _, code := range r.ExtraLines {
		fmt.Fprintf(w, "extra line in feed: %s\n", code)
	}
}
