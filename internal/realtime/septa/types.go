package septa

import (
	"time"

	"github.com/mini-septa/poller/internal/septa/catalog"
	"github.com/mini-septa/poller/internal/septa/decode"
)

// Train is one live position from TrainView.
type Train struct {
	TrainNumber string              `json:"trainNo"`
	Latitude    float64             `json:"lat"`
	Longitude   float64             `json:"lon"`
	Service     catalog.ServiceType `json:"service"`
	Destination catalog.Stop        `json:"destination"`
	CurrentStop catalog.Stop        `json:"currentStop"`
	NextStop    catalog.Stop        `json:"nextStop"`
	Source      catalog.Stop        `json:"source"`
	Line        catalog.Line        `json:"line"`
	Consist     []int               `json:"consist"`
	Heading     *float64            `json:"heading,omitempty"`
	Late        *int                `json:"lateMinutes,omitempty"`
	Track       string              `json:"track"`
	TrackChange string              `json:"trackChange"`
}

func (t *Train) UnmarshalJSON(data []byte) error {
	f, err := newFields(data)
	if err != nil {
		return err
	}

	*t = Train{
		Latitude:    parsed(f, "lat", decode.ParseFloat),
		Longitude:   parsed(f, "lon", decode.ParseFloat),
		TrainNumber: f.str("trainno"),
		Service:     f.service("service"),
		Destination: f.stop("dest"),
		CurrentStop: f.stop("currentstop"),
		NextStop:    f.stop("nextstop"),
		Line:        f.line("line"),
		Consist:     parsed(f, "consist", decode.ParseIntList),
		Heading:     optNumber[float64](f, "heading"),
		Late:        optNumber[int](f, "late"),
		Source:      f.stop("SOURCE"),
		Track:       f.str("TRACK"),
		TrackChange: f.str("TRACK_CHANGE"),
	}
	return f.err
}

// Arrival is one departure listed by the Arrivals endpoint.
type Arrival struct {
	Direction      string              `json:"direction"`
	Path           string              `json:"path"`
	TrainID        string              `json:"trainId"`
	Origin         catalog.Stop        `json:"origin"`
	Destination    catalog.Stop        `json:"destination"`
	Line           catalog.Line        `json:"line"`
	Status         string              `json:"status"`
	ServiceType    catalog.ServiceType `json:"serviceType"`
	NextStation    *catalog.Stop       `json:"nextStation,omitempty"`
	ScheduledTime  time.Time           `json:"scheduledTime"`
	DepartureTime  time.Time           `json:"departureTime"`
	Track          string              `json:"track"`
	TrackChange    *string             `json:"trackChange,omitempty"`
	Platform       string              `json:"platform"`
	PlatformChange *string             `json:"platformChange,omitempty"`
}

func (a *Arrival) UnmarshalJSON(data []byte) error {
	f, err := newFields(data)
	if err != nil {
		return err
	}

	*a = Arrival{
		Direction:      f.str("direction"),
		Path:           f.str("path"),
		TrainID:        f.str("train_id"),
		Origin:         f.stop("origin"),
		Destination:    f.stop("destination"),
		Line:           f.line("line"),
		Status:         f.str("status"),
		ServiceType:    f.service("service_type"),
		NextStation:    f.optStop("next_station"),
		ScheduledTime:  f.dateTime("sched_time"),
		DepartureTime:  f.dateTime("depart_time"),
		Track:          f.str("track"),
		TrackChange:    f.optStr("track_change"),
		Platform:       f.str("platform"),
		PlatformChange: f.optStr("platform_change"),
	}
	return f.err
}

// ArrivalsResult is the normalized Arrivals response. Both directions are
// always non-nil.
type ArrivalsResult struct {
	Title      string    `json:"title"`
	Northbound []Arrival `json:"northbound"`
	Southbound []Arrival `json:"southbound"`
}

// NextToArrive is one connection between two stations.
type NextToArrive struct {
	OriginTrain         string           `json:"origTrain"`
	OriginLine          catalog.Line     `json:"origLine"`
	OriginDepartureTime decode.TimeOfDay `json:"origDepartureTime"`
	OriginArrivalTime   decode.TimeOfDay `json:"origArrivalTime"`
	OriginDelay         string           `json:"origDelay"`
	IsDirect            bool             `json:"isDirect"`
}

func (n *NextToArrive) UnmarshalJSON(data []byte) error {
	f, err := newFields(data)
	if err != nil {
		return err
	}

	*n = NextToArrive{
		OriginTrain:         f.str("orig_train"),
		OriginLine:          f.line("orig_line"),
		OriginDepartureTime: parsed(f, "orig_departure_time", decode.ParseClock),
		OriginArrivalTime:   parsed(f, "orig_arrival_time", decode.ParseClock),
		OriginDelay:         f.str("orig_delay"),
		IsDirect:            parsed(f, "isdirect", decode.ParseBool),
	}
	return f.err
}

// ScheduleStop is one stop of a train's RRSchedules listing. ActualTime is
// nil until the train has served the stop.
type ScheduleStop struct {
	Station       catalog.Stop      `json:"station"`
	ScheduledTime decode.TimeOfDay  `json:"scheduledTime"`
	EstimatedTime decode.TimeOfDay  `json:"estimatedTime"`
	ActualTime    *decode.TimeOfDay `json:"actualTime,omitempty"`
}

func (s *ScheduleStop) UnmarshalJSON(data []byte) error {
	f, err := newFields(data)
	if err != nil {
		return err
	}

	*s = ScheduleStop{
		Station:       f.stop("station"),
		ScheduledTime: parsed(f, "sched_tm", decode.ParseSpacedClock),
		EstimatedTime: parsed(f, "est_tm", decode.ParseSpacedClock),
		ActualTime:    parsed(f, "act_tm", decode.ParseOptionalSpacedClock),
	}
	return f.err
}
