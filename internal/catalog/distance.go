package catalog

import (
	"math"

	"github.com/joshua-takyi/live/internal/models"
)

const (
	EarthRadiusMiles = 3959.0
	NearbyMiles      = 50.0
)

// Haversine returns the great-circle distance in miles.
func Haversine(a, b models.Coordinates) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func IsNearby(user, venue models.Coordinates) bool {
	return Haversine(user, venue) < NearbyMiles
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
