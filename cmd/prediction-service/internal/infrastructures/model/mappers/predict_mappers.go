package mappers

import (
	"fmt"
	"math"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/model/dto"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
)

// ToDelayRequest truncates the distance to whole kilometres, the unit the
// delay model was trained on.
func ToDelayRequest(f flightfeatures.DerivedFeatures, origin, destination string) dto.DelayRequest {
	return dto.DelayRequest{
		Month:              f.Month,
		Day:                f.Day,
		DaysOfWeek:         f.DayOfWeek,
		OriginAirport:      origin,
		DestinationAirport: destination,
		ScheduledDeparture: f.ScheduledDepartureHHMM,
		DepartureDelay:     f.DepartureDelayMinutes,
		AirTime:            f.AirTimeMinutes,
		Distance:           int(f.DistanceKm),
		ScheduledArrival:   f.ScheduledArrivalHHMM,
	}
}

func ToFareRequest(f flightfeatures.FareFeatures) dto.FareRequest {
	return dto.FareRequest{
		Airline:         f.Airline,
		SourceCity:      f.SourceCity,
		DestinationCity: f.DestinationCity,
		DepartureTime:   string(f.DepartureBucket),
		ArrivalTime:     string(f.ArrivalBucket),
		Stops:           string(f.Stops),
		FlightClass:     string(f.Class),
		Duration:        f.DurationHours,
		DaysLeft:        f.DaysLeft,
	}
}

func DelayValue(resp dto.DelayResponse) (float64, error) {
	return finite("predicted_delay", resp.PredictedDelay)
}

func FareValue(resp dto.FareResponse) (float64, error) {
	return finite("predicted_fare", resp.PredictedFare)
}

func finite(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("model response has no %s", field)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, fmt.Errorf("model response %s is not finite", field)
	}
	return *v, nil
}
