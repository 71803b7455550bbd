package geo

import (
	"math"

	"github.com/codeXAI06/ReliefLink/schema"
)

const EarthRadiusKM = 6371.0

// Distance returns the great-circle distance in kilometers between two
// coordinates using the haversine formula.
func Distance(from, to schema.Location) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lon1 := from.Longitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	lon2 := to.Longitude * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// WithinRadius reports whether to is at most radiusKM away from from.
func WithinRadius(from, to schema.Location, radiusKM float64) bool {
	return Distance(from, to) <= radiusKM
}

// ValidCoordinates checks a latitude/longitude pair for range errors.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
