package flightfeatures

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Bucket is the coarse part of day the fare model was trained on.
type Bucket string

const (
	BucketLateNight    Bucket = "Late_Night"
	BucketEarlyMorning Bucket = "Early_Morning"
	BucketMorning      Bucket = "Morning"
	BucketAfternoon    Bucket = "Afternoon"
	BucketEvening      Bucket = "Evening"
	BucketNight        Bucket = "Night"
)

type Stops string

const (
	StopsZero      Stops = "zero"
	StopsOne       Stops = "one"
	StopsTwoOrMore Stops = "two_or_more"
)

type CabinClass string

const (
	ClassEconomy  CabinClass = "Economy"
	ClassBusiness CabinClass = "Business"
)

type FareQuery struct {
	Airline     Airline
	Origin      Airport
	Destination Airport
	Departure   time.Time
	Arrival     time.Time
	Stops       int
	Class       CabinClass
}

type FareFeatures struct {
	Airline         string     `json:"airline"`
	SourceCity      string     `json:"source_city"`
	DestinationCity string     `json:"destination_city"`
	DepartureBucket Bucket     `json:"departure_time"`
	ArrivalBucket   Bucket     `json:"arrival_time"`
	Stops           Stops      `json:"stops"`
	Class           CabinClass `json:"class"`
	DurationHours   float64    `json:"duration"`
	DaysLeft        int        `json:"days_left"`
}

// TimeOfDayBucket maps the local hour of t to its bucket:
// [0,3) late night, [3,6) early morning, [6,12) morning, [12,18) afternoon,
// [18,21) evening, [21,24) night.
func TimeOfDayBucket(t time.Time) Bucket {
	switch h := t.Hour(); {
	case h < 3:
		return BucketLateNight
	case h < 6:
		return BucketEarlyMorning
	case h < 12:
		return BucketMorning
	case h < 18:
		return BucketAfternoon
	case h < 21:
		return BucketEvening
	default:
		return BucketNight
	}
}

func DurationHours(departure, arrival time.Time) float64 {
	return math.Abs(arrival.Sub(departure).Hours())
}

// DaysLeft is the number of days from now until departure, rounded up.
func DaysLeft(now, departure time.Time) int {
	return int(math.Ceil(departure.Sub(now).Hours() / 24))
}

func StopsLabel(n int) (Stops, error) {
	switch {
	case n < 0:
		return "", fmt.Errorf("%w: %d", ErrInvalidStops, n)
	case n == 0:
		return StopsZero, nil
	case n == 1:
		return StopsOne, nil
	default:
		return StopsTwoOrMore, nil
	}
}

func ParseCabinClass(value string) (CabinClass, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "economy":
		return ClassEconomy, nil
	case "business":
		return ClassBusiness, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCabinClass, value)
	}
}

// ValidateFare checks a fare query against now. City comparison only applies
// when both airports carry a city.
func ValidateFare(q FareQuery, now time.Time) error {
	if strings.TrimSpace(q.Airline.Name) == "" {
		return ErrInvalidAirline
	}
	if err := validateAirportCodes(q.Origin.IATA, q.Destination.IATA); err != nil {
		return err
	}
	originCity := strings.TrimSpace(q.Origin.City)
	destinationCity := strings.TrimSpace(q.Destination.City)
	if originCity != "" && strings.EqualFold(originCity, destinationCity) {
		return fmt.Errorf("%w: %s", ErrSameCity, originCity)
	}
	if !q.Arrival.After(q.Departure) {
		return fmt.Errorf("%w: arrival %s is not after departure %s", ErrInvalidOrdering, q.Arrival, q.Departure)
	}
	if !q.Departure.After(now) {
		return fmt.Errorf("%w: departure %s", ErrDepartureInPast, q.Departure)
	}
	if _, err := StopsLabel(q.Stops); err != nil {
		return err
	}
	if _, err := ParseCabinClass(string(q.Class)); err != nil {
		return err
	}
	return nil
}

func DeriveFare(q FareQuery, now time.Time) (FareFeatures, error) {
	if err := ValidateFare(q, now); err != nil {
		return FareFeatures{}, err
	}

	stops, _ := StopsLabel(q.Stops)
	class, _ := ParseCabinClass(string(q.Class))

	return FareFeatures{
		Airline:         strings.TrimSpace(q.Airline.Name),
		SourceCity:      strings.TrimSpace(q.Origin.City),
		DestinationCity: strings.TrimSpace(q.Destination.City),
		DepartureBucket: TimeOfDayBucket(q.Departure),
		ArrivalBucket:   TimeOfDayBucket(q.Arrival),
		Stops:           stops,
		Class:           class,
		DurationHours:   DurationHours(q.Departure, q.Arrival),
		DaysLeft:        DaysLeft(now, q.Departure),
	}, nil
}
