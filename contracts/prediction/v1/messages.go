package predictionv1

type Airport struct {
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PredictDelayRequest struct {
	OriginIATA         string `json:"origin_iata"`
	DestinationIATA    string `json:"destination_iata"`
	ScheduledDeparture string `json:"scheduled_departure"`
	ScheduledArrival   string `json:"scheduled_arrival"`
	ActualDeparture    string `json:"actual_departure,omitempty"`
}

func (r *PredictDelayRequest) GetOriginIATA() string {
	if r == nil {
		return ""
	}
	return r.OriginIATA
}

func (r *PredictDelayRequest) GetDestinationIATA() string {
	if r == nil {
		return ""
	}
	return r.DestinationIATA
}

type DelayFeatures struct {
	Month                  int32   `json:"month"`
	Day                    int32   `json:"day"`
	DayOfWeek              int32   `json:"day_of_week"`
	ScheduledDepartureHHMM int32   `json:"scheduled_departure_hhmm"`
	ScheduledArrivalHHMM   int32   `json:"scheduled_arrival_hhmm"`
	DepartureDelayMinutes  int32   `json:"departure_delay_minutes"`
	DistanceKm             float64 `json:"distance_km"`
	AirTimeMinutes         float64 `json:"air_time_minutes"`
}

type PredictDelayResponse struct {
	PredictionID          string         `json:"prediction_id"`
	PredictedDelayMinutes float64        `json:"predicted_delay_minutes"`
	Features              *DelayFeatures `json:"features"`
	Origin                *Airport       `json:"origin"`
	Destination           *Airport       `json:"destination"`
	Cached                bool           `json:"cached"`
}

type PredictFareRequest struct {
	Airline         string `json:"airline"`
	OriginIATA      string `json:"origin_iata"`
	DestinationIATA string `json:"destination_iata"`
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	Stops           int32  `json:"stops"`
	Class           string `json:"class"`
}

func (r *PredictFareRequest) GetOriginIATA() string {
	if r == nil {
		return ""
	}
	return r.OriginIATA
}

func (r *PredictFareRequest) GetDestinationIATA() string {
	if r == nil {
		return ""
	}
	return r.DestinationIATA
}

type FareFeatures struct {
	Airline         string  `json:"airline"`
	SourceCity      string  `json:"source_city"`
	DestinationCity string  `json:"destination_city"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Stops           string  `json:"stops"`
	Class           string  `json:"class"`
	DurationHours   float64 `json:"duration_hours"`
	DaysLeft        int32   `json:"days_left"`
}

type PredictFareResponse struct {
	PredictionID  string        `json:"prediction_id"`
	PredictedFare float64       `json:"predicted_fare"`
	Features      *FareFeatures `json:"features"`
	Origin        *Airport      `json:"origin"`
	Destination   *Airport      `json:"destination"`
	Cached        bool          `json:"cached"`
}

type ListPredictionsRequest struct {
	Kind  string `json:"kind"`
	Limit int32  `json:"limit"`
}

type PredictionRecord struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	OriginIATA      string  `json:"origin_iata"`
	DestinationIATA string  `json:"destination_iata"`
	Value           float64 `json:"value"`
	CreatedAt       string  `json:"created_at"`
}

type ListPredictionsResponse struct {
	Predictions []*PredictionRecord `json:"predictions"`
}
