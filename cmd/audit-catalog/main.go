package main

import (
	"flag"
	"log"
	"os"

	"github.com/mini-septa/poller/internal/static"
	"github.com/mini-septa/poller/internal/static/gtfs"
)

func main() {
	gtfsPath := flag.String("gtfs", "data/gtfs/septa_rail.zip", "Path to the SEPTA rail GTFS zip")
	flag.Parse()

	data, err := gtfs.Parse(*gtfsPath)
	if err != nil {
		log.Fatalf("Failed to parse GTFS: %v", err)
	}

	report := static.AuditCatalog(data)
	report.Write(os.Stdout)

	if !report.OK() {
		os.Exit(1)
	}
}
