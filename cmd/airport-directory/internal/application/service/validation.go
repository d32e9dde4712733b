package service

import (
	"fmt"
	"strings"

	derr "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
)

func NormalizeAirport(a models.Airport) models.Airport {
	a.IATA = flightfeatures.NormalizeIATACode(a.IATA)
	a.Name = strings.TrimSpace(a.Name)
	a.City = strings.TrimSpace(a.City)
	return a
}

// ValidateAirport enforces the directory invariants: a three-letter code, a
// name and coordinates inside the valid degree ranges.
func ValidateAirport(a models.Airport) error {
	if !flightfeatures.ValidIATACode(a.IATA) {
		return fmt.Errorf("%w: iata %q", derr.ErrInvalidAirport, a.IATA)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: %s has no name", derr.ErrInvalidAirport, a.IATA)
	}
	if !flightfeatures.ValidCoordinates(a.Latitude, a.Longitude) {
		return fmt.Errorf("%w: %s coordinates (%v, %v)", derr.ErrInvalidAirport, a.IATA, a.Latitude, a.Longitude)
	}
	return nil
}

// NormalizeAirline falls back to the name when the feed has no code.
func NormalizeAirline(a models.Airline) models.Airline {
	a.Name = strings.TrimSpace(a.Name)
	a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
	if a.Code == "" {
		a.Code = strings.ToUpper(a.Name)
	}
	return a
}

func ValidateAirline(a models.Airline) error {
	if a.Name == "" {
		return fmt.Errorf("%w: airline %q has no name", derr.ErrInvalidAirline, a.Code)
	}
	return nil
}
