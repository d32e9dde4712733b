package mappers

import (
	"math"
	"strings"

	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/reference/dto"
)

// ToDomainAirports maps feed rows one to one. A missing coordinate becomes
// NaN so the record fails validation and is counted as rejected.
func ToDomainAirports(records []dto.AirportRecord) []models.Airport {
	airports := make([]models.Airport, 0, len(records))
	for _, r := range records {
		airports = append(airports, models.Airport{
			IATA:      strings.ToUpper(strings.TrimSpace(r.IATA)),
			Name:      strings.TrimSpace(r.Name),
			City:      strings.TrimSpace(r.City),
			Latitude:  coordinate(r.Latitude),
			Longitude: coordinate(r.Longitude),
		})
	}
	return airports
}

func ToDomainAirlines(records []dto.AirlineRecord) []models.Airline {
	airlines := make([]models.Airline, 0, len(records))
	for _, r := range records {
		airlines = append(airlines, models.Airline{
			Code: strings.TrimSpace(r.Code),
			Name: strings.TrimSpace(r.Name),
		})
	}
	return airlines
}

func coordinate(f dto.FlexFloat) float64 {
	if !f.Valid {
		return math.NaN()
	}
	return f.Value
}
