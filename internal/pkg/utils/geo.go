package utils

import (
	"math"
	"medifind-service/internal/pkg/constvars"
)

// HaversineKm returns the great-circle distance between two coordinates in
// kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return constvars.EarthRadiusKm * c
}

// TravelMinutes estimates door-to-door travel time for a distance in km,
// assuming the average road speed in constvars.TravelSpeedKmPerHour.
func TravelMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / constvars.TravelSpeedKmPerHour * 60))
}

// RoundDistanceKm rounds a distance to one decimal for display.
func RoundDistanceKm(distanceKm float64) float64 {
	return math.Round(distanceKm*10) / 10
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
