package septa

import (
	"net/url"
	"strconv"

	"github.com/mini-septa/poller/internal/septa/catalog"
)

// Direction filters Arrivals to one direction of travel.
type Direction int

const (
	North Direction = iota + 1
	South
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	}
	return ""
}

// ArrivalsRequest asks for departures from a station. Zero Results and a nil
// Direction leave the upstream defaults in place.
type ArrivalsRequest struct {
	Station   catalog.Stop
	Results   int
	Direction *Direction
}

func (r ArrivalsRequest) Params() url.Values {
	params := url.Values{}
	params.Set("station", r.Station.String())
	if r.Direction != nil {
		params.Set("direction", r.Direction.String())
	}
	if r.Results > 0 {
		params.Set("results", strconv.Itoa(r.Results))
	}
	return params
}

// NextToArriveRequest asks for connections from one station to another.
type NextToArriveRequest struct {
	From    catalog.Stop
	To      catalog.Stop
	Results int
}

func (r NextToArriveRequest) Params() url.Values {
	params := url.Values{}
	params.Set("req1", r.From.String())
	params.Set("req2", r.To.String())
	if r.Results > 0 {
		params.Set("req3", strconv.Itoa(r.Results))
	}
	return params
}

// RailScheduleRequest asks for the stop-by-stop schedule of one train.
type RailScheduleRequest struct {
	TrainNumber string
}

func (r RailScheduleRequest) Params() url.Values {
	params := url.Values{}
	params.Set("req1", r.TrainNumber)
	return params
}
