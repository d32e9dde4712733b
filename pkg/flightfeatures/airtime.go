package flightfeatures

import "time"

// DefaultCruiseSpeedKmh is the assumed cruise speed; typical jets fly
// between 800 and 965 km/h.
const DefaultCruiseSpeedKmh = 880.0

// DepartureDelay returns actual - scheduled in whole minutes, truncated toward
// zero. Early departures give a negative value.
func DepartureDelay(scheduled, actual time.Time) int {
	return int(actual.Sub(scheduled) / time.Minute)
}

// AirTime estimates minutes in the air for distanceKm at cruiseSpeedKmh.
// A non-positive speed falls back to DefaultCruiseSpeedKmh.
func AirTime(distanceKm, cruiseSpeedKmh float64) float64 {
	if cruiseSpeedKmh <= 0 {
		cruiseSpeedKmh = DefaultCruiseSpeedKmh
	}
	if distanceKm <= 0 {
		return 0
	}
	return distanceKm / cruiseSpeedKmh * 60
}
