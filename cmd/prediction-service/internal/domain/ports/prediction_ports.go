package ports

import (
	"context"
	"time"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/models"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
)

type AirportReader interface {
	GetAirport(ctx context.Context, iata string) (flightfeatures.Airport, error)
}

// PredictionModel is the remote scoring server. Both calls return the raw,
// unrounded model output.
type PredictionModel interface {
	PredictDelay(ctx context.Context, features flightfeatures.DerivedFeatures, origin, destination string) (float64, error)
	PredictFare(ctx context.Context, features flightfeatures.FareFeatures) (float64, error)
}

type PredictionCache interface {
	Get(ctx context.Context, kind models.Kind, key string) (float64, error)
	Set(ctx context.Context, kind models.Kind, key string, value float64, ttl time.Duration) error
}

type PredictionRepository interface {
	Save(ctx context.Context, record models.Record) error
	ListRecent(ctx context.Context, kind models.Kind, limit int) ([]models.Record, error)
}

type PredictionPublisher interface {
	PublishCompleted(ctx context.Context, record models.Record) error
}
