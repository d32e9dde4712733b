package dto

// DelayRequest is the body of POST /delay/predict/.
type DelayRequest struct {
	Month              int     `json:"month"`
	Day                int     `json:"day"`
	DaysOfWeek         int     `json:"daysofweek"`
	OriginAirport      string  `json:"originAirport"`
	DestinationAirport string  `json:"destinationAirport"`
	ScheduledDeparture int     `json:"scheduledDeparture"`
	DepartureDelay     int     `json:"departureDelay"`
	AirTime            float64 `json:"airTime"`
	Distance           int     `json:"distance"`
	ScheduledArrival   int     `json:"scheduledArrival"`
}

type DelayResponse struct {
	PredictedDelay *float64 `json:"predicted_delay"`
}

// FareRequest is the body of POST /predict/.
type FareRequest struct {
	Airline         string  `json:"airline"`
	SourceCity      string  `json:"sourceCity"`
	DestinationCity string  `json:"destinationCity"`
	DepartureTime   string  `json:"departureTime"`
	ArrivalTime     string  `json:"arrivalTime"`
	Stops           string  `json:"stops"`
	FlightClass     string  `json:"flightClass"`
	Duration        float64 `json:"duration"`
	DaysLeft        int     `json:"days_left"`
}

type FareResponse struct {
	PredictedFare *float64 `json:"predicted_fare"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
