package catalog

import "math"

const earthRadiusMeters = 6371000

// Haversine calculates the distance between two points in meters
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// DistanceTo returns the distance in meters from c to o.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return Haversine(c.Lat, c.Lon, o.Lat, o.Lon)
}

// NearestStop finds the recognized stop closest to (lat, lon) and its
// distance in meters.
func NearestStop(lat, lon float64) (Stop, float64) {
	target := Coordinate{Lat: lat, Lon: lon}
	best := UnknownStop
	minDist := math.MaxFloat64

	for code := UnknownStop + 1; code < stopCodeCount; code++ {
		dist := target.DistanceTo(stopTable[code].coord)
		if dist < minDist {
			minDist = dist
			best = code
		}
	}

	return Stop{Code: best}, minDist
}
