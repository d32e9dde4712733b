package mappers

import (
	"testing"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/model/dto"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
)

func TestToDelayRequest_TruncatesDistance(t *testing.T) {
	got := ToDelayRequest(flightfeatures.DerivedFeatures{
		Month:                  3,
		Day:                    15,
		DayOfWeek:              6,
		ScheduledDepartureHHMM: 1430,
		ScheduledArrivalHHMM:   1605,
		DepartureDelayMinutes:  22,
		DistanceKm:             705.93,
		AirTimeMinutes:         48.13,
	}, "SYD", "MEL")

	if got.Distance != 705 {
		t.Fatalf("unexpected distance: got %d want 705", got.Distance)
	}
	if got.DaysOfWeek != 6 || got.ScheduledDeparture != 1430 || got.ScheduledArrival != 1605 {
		t.Fatalf("unexpected request: %+v", got)
	}
	if got.OriginAirport != "SYD" || got.DestinationAirport != "MEL" {
		t.Fatalf("unexpected airports: %+v", got)
	}
}

func TestToFareRequest_UsesModelLabels(t *testing.T) {
	got := ToFareRequest(flightfeatures.FareFeatures{
		Airline:         "Vistara",
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		DepartureBucket: flightfeatures.BucketEvening,
		ArrivalBucket:   flightfeatures.BucketNight,
		Stops:           flightfeatures.StopsTwoOrMore,
		Class:           flightfeatures.ClassBusiness,
		DurationHours:   2.25,
		DaysLeft:        9,
	})

	if got.DepartureTime != "Evening" || got.ArrivalTime != "Night" {
		t.Fatalf("unexpected buckets: %+v", got)
	}
	if got.Stops != "two_or_more" || got.FlightClass != "Business" {
		t.Fatalf("unexpected labels: %+v", got)
	}
}

func TestDelayValue_RejectsMissingField(t *testing.T) {
	if _, err := DelayValue(dto.DelayResponse{}); err == nil {
		t.Fatal("expected error for missing predicted_delay")
	}
}

func TestFareValue(t *testing.T) {
	v := 4321.5
	got, err := FareValue(dto.FareResponse{PredictedFare: &v})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != v {
		t.Fatalf("unexpected fare: got %v want %v", got, v)
	}
}
