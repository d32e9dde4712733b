package models

import (
	"time"

	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
)

type Kind string

const (
	KindDelay Kind = "delay"
	KindFare  Kind = "fare"
)

func ParseKind(value string) (Kind, bool) {
	switch Kind(value) {
	case KindDelay:
		return KindDelay, true
	case KindFare:
		return KindFare, true
	default:
		return "", false
	}
}

type DelayRequest struct {
	OriginIATA         string
	DestinationIATA    string
	ScheduledDeparture string
	ScheduledArrival   string
	ActualDeparture    string
}

type FareRequest struct {
	Airline         string
	OriginIATA      string
	DestinationIATA string
	Departure       string
	Arrival         string
	Stops           int
	Class           string
}

type DelayPrediction struct {
	ID                    string
	PredictedDelayMinutes float64
	Features              flightfeatures.DerivedFeatures
	Origin                flightfeatures.Airport
	Destination           flightfeatures.Airport
	Cached                bool
}

type FarePrediction struct {
	ID            string
	PredictedFare float64
	Features      flightfeatures.FareFeatures
	Origin        flightfeatures.Airport
	Destination   flightfeatures.Airport
	Cached        bool
}

// Record is one stored prediction. Features holds the JSON body sent to
// the model server.
type Record struct {
	ID              string    `json:"id"`
	Kind            Kind      `json:"kind"`
	OriginIATA      string    `json:"origin_iata"`
	DestinationIATA string    `json:"destination_iata"`
	Value           float64   `json:"value"`
	Features        []byte    `json:"features,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
