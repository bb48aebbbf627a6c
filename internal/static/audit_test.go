package static

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mini-septa/poller/internal/septa/catalog"
	"github.com/mini-septa/poller/internal/static/gtfs"
)

// feedFromCatalog renders the catalog as a GTFS feed that matches it exactly.
func feedFromCatalog() *gtfs.Data {
	data := &gtfs.Data{}
	for _, stop := range catalog.Stops() {
		id, _ := stop.ID()
		coord, _ := stop.Coordinate()
		data.Stops = append(data.Stops, gtfs.Stop{
			StopID:   strconv.Itoa(id),
			StopName: stop.String(),
			StopLat:  coord.Lat,
			StopLon:  coord.Lon,
		})
	}
	for _, line := range catalog.Lines() {
		data.Routes = append(data.Routes, gtfs.Route{RouteID: line.Code(), RouteLongName: line.String(), RouteType: 2})
	}
	return data
}

func TestAuditCatalog_Matches(t *testing.T) {
	report := AuditCatalog(feedFromCatalog())
	if !report.OK() {
		var buf bytes.Buffer
		report.Write(&buf)
		t.Errorf("expected a clean report, got:\n%s", buf.String())
	}
}

func TestAuditCatalog_Mismatches(t *testing.T) {
	data := feedFromCatalog()

	var kept []gtfs.Stop
	for _, s := range data.Stops {
		switch s.StopID {
		case "90301": // Elwyn
			continue
		case "90004": // Gray 30th Street
			s.StopName = "William H Gray III 30th St"
		case "90007": // Temple University
			s.StopLat += 0.01
		}
		kept = append(kept, s)
	}
	kept = append(kept, gtfs.Stop{StopID: "99999", StopName: "Atlantis", StopLat: 40, StopLon: -75})
	data.Stops = kept
	data.Routes = append(data.Routes[1:], gtfs.Route{RouteID: "BSL"})

	report := AuditCatalog(data)
	if report.OK() {
		t.Fatal("expected mismatches")
	}

	if fmt.Sprint(report.MissingStops) != "[90301]" {
		t.Errorf("MissingStops = %v", report.MissingStops)
	}
	if fmt.Sprint(report.ExtraStops) != "[99999]" {
		t.Errorf("ExtraStops = %v", report.ExtraStops)
	}
	if fmt.Sprint(report.UnresolvedNames) != "[Atlantis William H Gray III 30th St]" {
		t.Errorf("UnresolvedNames = %v", report.UnresolvedNames)
	}
	if fmt.Sprint(report.MissingLines) != "[AIR]" || fmt.Sprint(report.ExtraLines) != "[BSL]" {
		t.Errorf("lines = %v / %v", report.MissingLines, report.ExtraLines)
	}

	if len(report.Mismatches) != 2 {
		t.Fatalf("Mismatches = %+v, expected 2", report.Mismatches)
	}
	name, coord := report.Mismatches[0], report.Mismatches[1]
	if name.StopID != 90004 || name.Field != "name" || name.Catalog != "Gray 30th Street" {
		t.Errorf("name mismatch = %+v", name)
	}
	if coord.StopID != 90007 || coord.Field != "coordinate" || coord.Distance < 1000 || coord.Distance > 1200 {
		t.Errorf("coordinate mismatch = %+v", coord)
	}

	var buf bytes.Buffer
	report.Write(&buf)
	if !strings.Contains(buf.String(), "missing stop: 90301") {
		t.Errorf("report output missing stop line:\n%s", buf.String())
	}
}

func TestAuditCatalog_FromArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, _ := zw.Create("stops.txt")
	fmt.Fprintln(w, "stop_id,stop_name,stop_lat,stop_lon")
	fmt.Fprintln(w, "90301,Elwyn,39.907325,-75.411237")

	w, _ = zw.Create("routes.txt")
	fmt.Fprintln(w, "route_id,route_long_name,route_type")
	fmt.Fprintln(w, "MED,Media/Wawa,2")

	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "septa_rail.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := gtfs.Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	report := AuditCatalog(data)
	if len(report.MissingStops) != len(catalog.Stops())-1 {
		t.Errorf("MissingStops = %d, expected every stop but Elwyn", len(report.MissingStops))
	}
	if len(report.MissingLines) != len(catalog.Lines())-1 {
		t.Errorf("MissingLines = %v", report.MissingLines)
	}
	if len(report.ExtraStops) != 0 || len(report.UnresolvedNames) != 0 {
		t.Errorf("extra/unresolved = %v / %v", report.ExtraStops, report.UnresolvedNames)
	}
}
