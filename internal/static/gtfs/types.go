package gtfs

// Data holds the parts of a rail GTFS feed the catalog audit needs.
type Data struct {
	Routes []Route
	Stops  []Stop
}

// Route represents a route from routes.txt
type Route struct {
	RouteID        string
	RouteShortName string
	RouteLongName  string
	RouteType      int
}

// Stop represents a stop from stops.txt
type Stop struct {
	StopID   string
	StopName string
	StopLat  float64
	StopLon  float64
}
