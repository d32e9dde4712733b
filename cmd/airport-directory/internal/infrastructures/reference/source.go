package reference

import (
	"context"
	"fmt"

	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/reference/http/client"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/reference/mappers"
)

type Source struct {
	client       *client.Client
	airportsPath string
	airlinesPath string
}

func NewSource(client *client.Client, airportsPath, airlinesPath string) *Source {
	return &Source{
		client:       client,
		airportsPath: airportsPath,
		airlinesPath: airlinesPath,
	}
}

func (s *Source) FetchAirports(ctx context.Context) ([]models.Airport, error) {
	records, err := s.client.GetAirports(ctx, s.airportsPath)
	if err != nil {
		return nil, fmt.Errorf("fetch airports feed: %w", err)
	}
	return mappers.ToDomainAirports(records), nil
}

// FetchAirlines returns nil without calling the feed when no airlines path
// is configured.
func (s *Source) FetchAirlines(ctx context.Context) ([]models.Airline, error) {
	if s.airlinesPath == "" {
		return nil, nil
	}

	records, err := s.client.GetAirlines(ctx, s.airlinesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch airlines feed: %w", err)
	}
	return mappers.ToDomainAirlines(records), nil
}
