package flightfeatures

import "fmt"

type options struct {
	cruiseSpeedKmh float64
}

type Option func(*options)

// WithCruiseSpeed overrides DefaultCruiseSpeedKmh for the air time estimate.
func WithCruiseSpeed(kmh float64) Option {
	return func(o *options) {
		if kmh > 0 {
			o.cruiseSpeedKmh = kmh
		}
	}
}

// Validate applies the input rules a FlightQuery must satisfy before any
// feature is derived. It never touches coordinates beyond range checks, so a
// query holding only IATA codes can be validated before airports are resolved.
func Validate(q FlightQuery) error {
	if err := validateAirportCodes(q.Origin.IATA, q.Destination.IATA); err != nil {
		return err
	}
	if !q.ScheduledArrival.After(q.ScheduledDeparture) {
		return fmt.Errorf("%w: scheduled arrival %s is not after scheduled departure %s",
			ErrInvalidOrdering, q.ScheduledArrival, q.ScheduledDeparture)
	}
	if q.ActualDeparture != nil && !q.ScheduledArrival.After(*q.ActualDeparture) {
		return fmt.Errorf("%w: scheduled arrival %s is not after actual departure %s",
			ErrInvalidOrdering, q.ScheduledArrival, *q.ActualDeparture)
	}
	if !ValidCoordinates(q.Origin.Latitude, q.Origin.Longitude) {
		return fmt.Errorf("%w: origin %s", ErrInvalidCoordinates, q.Origin.IATA)
	}
	if !ValidCoordinates(q.Destination.Latitude, q.Destination.Longitude) {
		return fmt.Errorf("%w: destination %s", ErrInvalidCoordinates, q.Destination.IATA)
	}
	return nil
}

// Derive validates q and computes the delay model features. Calendar fields
// and HHMM values are taken in the location of the scheduled timestamps.
func Derive(q FlightQuery, opts ...Option) (DerivedFeatures, error) {
	o := options{cruiseSpeedKmh: DefaultCruiseSpeedKmh}
	for _, opt := range opts {
		opt(&o)
	}

	if err := Validate(q); err != nil {
		return DerivedFeatures{}, err
	}

	cal := CalendarOf(q.ScheduledDeparture)
	distance := AirportDistance(q.Origin, q.Destination)

	delay := 0
	if q.ActualDeparture != nil {
		delay = DepartureDelay(q.ScheduledDeparture, *q.ActualDeparture)
	}

	return DerivedFeatures{
		Month:                  cal.Month,
		Day:                    cal.Day,
		DayOfWeek:              cal.DayOfWeek,
		ScheduledDepartureHHMM: ToHHMM(q.ScheduledDeparture),
		ScheduledArrivalHHMM:   ToHHMM(q.ScheduledArrival),
		DepartureDelayMinutes:  delay,
		DistanceKm:             distance,
		AirTimeMinutes:         AirTime(distance, o.cruiseSpeedKmh),
	}, nil
}
