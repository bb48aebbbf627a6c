package gtfsrt

import (
	"testing"
	"time"

	"github.com/mini-septa/poller/internal/db"
	"google.golang.org/protobuf/proto"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

func TestBuildFeed(t *testing.T) {
	heading := 189.5
	nextStop := 90004
	observedAt := time.Date(2023, 4, 11, 22, 29, 0, 0, time.UTC)

	vehicles := []Vehicle{
		FromStored(db.Train{
			TrainNo:     "2333",
			LineCode:    "MED",
			Latitude:    39.954174265,
			Longitude:   -75.16763361,
			Heading:     &heading,
			NextStopID:  &nextStop,
			PolledAtUTC: observedAt,
		}),
		{TrainNo: "9999", Latitude: 40.0, Longitude: -75.2},
	}

	generatedAt := observedAt.Add(5 * time.Second)
	data, err := Marshal(BuildFeed(vehicles, generatedAt))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var feed gtfs.FeedMessage
	if err := proto.Unmarshal(data, &feed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	header := feed.GetHeader()
	if header.GetGtfsRealtimeVersion() != "2.0" {
		t.Errorf("version = %q", header.GetGtfsRealtimeVersion())
	}
	if header.GetIncrementality() != gtfs.FeedHeader_FULL_DATASET {
		t.Errorf("incrementality = %v", header.GetIncrementality())
	}
	if header.GetTimestamp() != uint64(generatedAt.Unix()) {
		t.Errorf("timestamp = %d", header.GetTimestamp())
	}
	if len(feed.GetEntity()) != 2 {
		t.Fatalf("got %d entities, expected 2", len(feed.GetEntity()))
	}

	first := feed.GetEntity()[0]
	if first.GetId() != "train-2333" {
		t.Errorf("entity id = %q", first.GetId())
	}
	vp := first.GetVehicle()
	if vp.GetVehicle().GetId() != "2333" || vp.GetVehicle().GetLabel() != "2333" {
		t.Errorf("vehicle = %v", vp.GetVehicle())
	}
	if vp.GetTrip().GetRouteId() != "MED" {
		t.Errorf("route id = %q", vp.GetTrip().GetRouteId())
	}
	if vp.GetStopId() != "90004" {
		t.Errorf("stop id = %q", vp.GetStopId())
	}
	if vp.GetCurrentStatus() != gtfs.VehiclePosition_IN_TRANSIT_TO {
		t.Errorf("status = %v", vp.GetCurrentStatus())
	}
	if vp.GetPosition().GetBearing() != float32(heading) {
		t.Errorf("bearing = %v", vp.GetPosition().GetBearing())
	}
	if vp.GetPosition().GetLatitude() != float32(39.954174265) {
		t.Errorf("latitude = %v", vp.GetPosition().GetLatitude())
	}
	if vp.GetTimestamp() != uint64(observedAt.Unix()) {
		t.Errorf("vehicle timestamp = %d", vp.GetTimestamp())
	}

	second := feed.GetEntity()[1].GetVehicle()
	if second.Trip != nil || second.StopId != nil || second.Position.Bearing != nil {
		t.Errorf("optional fields should be unset: %v", second)
	}
}

func TestBuildFeed_Empty(t *testing.T) {
	feed := BuildFeed(nil, time.Now())
	if feed.GetHeader() == nil || len(feed.GetEntity()) != 0 {
		t.Errorf("feed = %v", feed)
	}
}
