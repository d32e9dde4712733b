package flightfeatures

import "errors"

var (
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrSameAirport        = errors.New("origin and destination airports are the same")
	ErrSameCity           = errors.New("origin and destination cities are the same")
	ErrInvalidOrdering    = errors.New("arrival must be after departure")
	ErrInvalidAirportCode = errors.New("invalid airport code")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrDepartureInPast    = errors.New("departure must be in the future")
	ErrInvalidAirline     = errors.New("invalid airline")
	ErrInvalidStops       = errors.New("invalid number of stops")
	ErrInvalidCabinClass  = errors.New("invalid cabin class")
)

// IsValidationError reports whether err is one of the input rejections above.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidTimestamp,
		ErrInvalidTimeOfDay,
		ErrSameAirport,
		ErrSameCity,
		ErrInvalidOrdering,
		ErrInvalidAirportCode,
		ErrInvalidCoordinates,
		ErrDepartureInPast,
		ErrInvalidAirline,
		ErrInvalidStops,
		ErrInvalidCabinClass,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
