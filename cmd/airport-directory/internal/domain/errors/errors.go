package errors

import "errors"

var (
	ErrAirportNotFound   = errors.New("airport not found")
	ErrInvalidAirport    = errors.New("invalid airport")
	ErrInvalidAirline    = errors.New("invalid airline")
	ErrSourceUnavailable = errors.New("source unavailable")
)
