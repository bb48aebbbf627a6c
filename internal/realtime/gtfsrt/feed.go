// Package gtfsrt exports stored train positions as a GTFS-Realtime
// VehiclePositions feed.
package gtfsrt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mini-septa/poller/internal/db"
	"google.golang.org/protobuf/proto"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

const gtfsRealtimeVersion = "2.0"

// Vehicle is one train position to publish.
type Vehicle struct {
	TrainNo    string
	RouteID    string
	Latitude   float64
	Longitude  float64
	Bearing    *float64
	NextStopID *int
	ObservedAt time.Time
}

// FromStored converts a stored train row.
func FromStored(t db.Train) Vehicle {
	return Vehicle{
		TrainNo:    t.TrainNo,
		RouteID:    t.LineCode,
		Latitude:   t.Latitude,
		Longitude:  t.Longitude,
		Bearing:    t.Heading,
		NextStopID: t.NextStopID,
		ObservedAt: t.PolledAtUTC,
	}
}

// BuildFeed assembles a full-dataset FeedMessage with one VehiclePosition
// entity per vehicle.
func BuildFeed(vehicles []Vehicle, generatedAt time.Time) *gtfs.FeedMessage {
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String(gtfsRealtimeVersion),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(generatedAt.Unix())),
		},
		Entity: make([]*gtfs.FeedEntity, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		position := &gtfs.VehiclePosition{
			Vehicle: &gtfs.VehicleDescriptor{
				Id:    proto.String(v.TrainNo),
				Label: proto.String(v.TrainNo),
			},
			Position: &gtfs.Position{
				Latitude:  proto.Float32(float32(v.Latitude)),
				Longitude: proto.Float32(float32(v.Longitude)),
			},
			CurrentStatus: gtfs.VehiclePosition_IN_TRANSIT_TO.Enum(),
		}

		if v.RouteID != "" {
			position.Trip = &gtfs.TripDescriptor{RouteId: proto.String(v.RouteID)}
		}
		if v.Bearing != nil {
			position.Position.Bearing = proto.Float32(float32(*v.Bearing))
		}
		if v.NextStopID != nil {
			position.StopId = proto.String(strconv.Itoa(*v.NextStopID))
		}
		if !v.ObservedAt.IsZero() {
			position.Timestamp = proto.Uint64(uint64(v.ObservedAt.Unix()))
		}

		feed.Entity = append(feed.Entity, &gtfs.FeedEntity{
			Id:      proto.String("train-" + v.TrainNo),
			Vehicle: position,
		})
	}

	return feed
}

// Marshal encodes the feed in protobuf wire format.
func Marshal(feed *gtfs.FeedMessage) ([]byte, error) {
	data, err := proto.Marshal(feed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feed: %w", err)
	}
	return data, nil
}
