package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Parse reads a GTFS zip file and returns parsed data
func Parse(zipPath string) (*Data, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	return parseArchive(&r.Reader)
}

// ParseReader is Parse for an archive already held in memory or on an open file.
func ParseReader(r io.ReaderAt, size int64) (*Data, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	return parseArchive(zr)
}

func parseArchive(r *zip.Reader) (*Data, error) {
	files := make(map[string]*zip.File)
	for _, f := range r.File {
		files[f.Name] = f
	}

	data := &Data{}

	f, ok := files["stops.txt"]
	if !ok {
		return nil, errors.New("stops.txt not found in archive")
	}
	stops, err := parseStops(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stops.txt: %w", err)
	}
	data.Stops = stops

	if f, ok := files["routes.txt"]; ok {
		routes, err := parseRoutes(f)
		if err != nil {
			log.Printf("Warning: failed to parse routes.txt: %v", err)
		} else {
			data.Routes = routes
		}
	}

	log.Printf("GTFS parsed: %d routes, %d stops", len(data.Routes), len(data.Stops))

	return data, nil
}

// eachRecord calls fn for every well-formed row of a CSV member. Malformed
// rows are skipped; read failures such as a bad checksum end the scan.
func eachRecord(f *zip.File, fn func(record []string, idx map[string]int)) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	header, err := reader.Read()
	if err != nil {
		return err
	}

	idx := makeIndex(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				continue
			}
			return err
		}
		fn(record, idx)
	}
}

func parseRoutes(f *zip.File) ([]Route, error) {
	var routes []Route

	err := eachRecord(f, func(record []string, idx map[string]int) {
		routeType, _ := strconv.Atoi(getField(record, idx, "route_type"))

		routes = append(routes, Route{
			RouteID:        getField(record, idx, "route_id"),
			RouteShortName: getField(record, idx, "route_short_name"),
			RouteLongName:  getField(record, idx, "route_long_name"),
			RouteType:      routeType,
		})
	})

	return routes, err
}

func parseStops(f *zip.File) ([]Stop, error) {
	var stops []Stop

	err := eachRecord(f, func(record []string, idx map[string]int) {
		lat, _ := strconv.ParseFloat(getField(record, idx, "stop_lat"), 64)
		lon, _ := strconv.ParseFloat(getField(record, idx, "stop_lon"), 64)

		stops = append(stops, Stop{
			StopID:   getField(record, idx, "stop_id"),
			StopName: getField(record, idx, "stop_name"),
			StopLat:  lat,
			StopLon:  lon,
		})
	})

	return stops, err
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		// Some exports start with a UTF-8 byte order mark.
		idx[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, field string) string {
	if i, ok := idx[field]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
