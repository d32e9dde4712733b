package errors

import "errors"

var (
	ErrAirportNotFound    = errors.New("airport not found")
	ErrSourceTemporary    = errors.New("temporary source failure")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrInvalidKind        = errors.New("invalid prediction kind")
)
