package ports

import (
	"context"
	"time"

	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
)

type AirportRepository interface {
	GetByIATA(ctx context.Context, iata string) (models.Airport, error)
	List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, error)
	Upsert(ctx context.Context, airport models.Airport) error
	Delete(ctx context.Context, iata string) error
	ListAirlines(ctx context.Context) ([]models.Airline, error)
	UpsertAirline(ctx context.Context, airline models.Airline) error
}

type AirportCache interface {
	GetByIATA(ctx context.Context, iata string) (models.Airport, error)
	Set(ctx context.Context, airport models.Airport, ttl time.Duration) error
	Delete(ctx context.Context, iata string) error
}

type ReferenceSource interface {
	FetchAirports(ctx context.Context) ([]models.Airport, error)
	FetchAirlines(ctx context.Context) ([]models.Airline, error)
}
