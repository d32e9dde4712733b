package flightfeatures

import "time"

// Airport is immutable reference data. Coordinates are decimal degrees.
type Airport struct {
	Name      string  `json:"name"`
	IATA      string  `json:"iata"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FlightQuery is the input of the delay model. ActualDeparture is nil when
// the flight has not left yet.
type FlightQuery struct {
	Origin             Airport
	Destination        Airport
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	ActualDeparture    *time.Time
}

type CalendarFields struct {
	Month     int `json:"month"`
	Day       int `json:"day"`
	DayOfWeek int `json:"day_of_week"`
}

type DerivedFeatures struct {
	Month                  int     `json:"month"`
	Day                    int     `json:"day"`
	DayOfWeek              int     `json:"day_of_week"`
	ScheduledDepartureHHMM int     `json:"scheduled_departure_hhmm"`
	ScheduledArrivalHHMM   int     `json:"scheduled_arrival_hhmm"`
	DepartureDelayMinutes  int     `json:"departure_delay_minutes"`
	DistanceKm             float64 `json:"distance_km"`
	AirTimeMinutes         float64 `json:"air_time_minutes"`
}
