package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/models"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/ports"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "prediction-service/service"

	defaultListLimit = 20
	maxListLimit     = 100
)

type Settings struct {
	CacheTTL       time.Duration
	Location       *time.Location
	CruiseSpeedKmh float64
	Now            func() time.Time
}

type PredictionService struct {
	log       *zap.Logger
	airports  ports.AirportReader
	model     ports.PredictionModel
	cache     ports.PredictionCache
	history   ports.PredictionRepository
	publisher ports.PredictionPublisher

	cacheTTL       time.Duration
	location       *time.Location
	cruiseSpeedKmh float64
	now            func() time.Time
	newID          func() string
}

func NewPredictionService(
	log *zap.Logger,
	airports ports.AirportReader,
	model ports.PredictionModel,
	cache ports.PredictionCache,
	history ports.PredictionRepository,
	publisher ports.PredictionPublisher,
	settings Settings,
) *PredictionService {
	if log == nil {
		log = zap.NewNop()
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.CruiseSpeedKmh <= 0 {
		settings.CruiseSpeedKmh = flightfeatures.DefaultCruiseSpeedKmh
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}

	return &PredictionService{
		log:            log,
		airports:       airports,
		model:          model,
		cache:          cache,
		history:        history,
		publisher:      publisher,
		cacheTTL:       settings.CacheTTL,
		location:       settings.Location,
		cruiseSpeedKmh: settings.CruiseSpeedKmh,
		now:            settings.Now,
		newID:          func() string { return uuid.NewString() },
	}
}

func (s *PredictionService) PredictDelay(ctx context.Context, req models.DelayRequest) (models.DelayPrediction, error) {
	const op = "service.PredictDelay"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	originIATA := flightfeatures.NormalizeIATACode(req.OriginIATA)
	destinationIATA := flightfeatures.NormalizeIATACode(req.DestinationIATA)
	span.SetAttributes(
		attribute.String("prediction.origin_iata", originIATA),
		attribute.String("prediction.destination_iata", destinationIATA),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin_iata", originIATA),
		zap.String("destination_iata", destinationIATA),
	)

	query, err := s.flightQuery(req, originIATA, destinationIATA)
	if err == nil {
		err = flightfeatures.Validate(query)
	}
	if err != nil {
		logger.Warn("invalid delay request", zap.Error(err))
		span.SetStatus(otelcodes.Error, "invalid request")
		return models.DelayPrediction{}, fmt.Errorf("%s: %w", op, err)
	}

	origin, destination, err := s.resolveRoute(ctx, originIATA, destinationIATA)
	if err != nil {
		logger.Warn("failed to resolve airports", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to resolve airports")
		return models.DelayPrediction{}, fmt.Errorf("%s: %w", op, err)
	}
	query.Origin = origin
	query.Destination = destination

	features, err := flightfeatures.Derive(query, flightfeatures.WithCruiseSpeed(s.cruiseSpeedKmh))
	if err != nil {
		logger.Warn("failed to derive features", zap.Error(err))
		span.SetStatus(otelcodes.Error, "invalid request")
		return models.DelayPrediction{}, fmt.Errorf("%s: %w", op, err)
	}

	body, key, err := fingerprint(delayCacheInput{Origin: origin.IATA, Destination: destination.IATA, Features: features})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to encode features")
		return models.DelayPrediction{}, fmt.Errorf("%s: %w", op, err)
	}

	value, cached := s.cached(ctx, logger, span, models.KindDelay, key)
	if !cached {
		raw, err := s.model.PredictDelay(ctx, features, origin.IATA, destination.IATA)
		if err != nil {
			logger.Warn("delay model call failed", zap.Error(err))
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "delay model call failed")
			return models.DelayPrediction{}, fmt.Errorf("%s: %w", op, err)
		}
		value = roundPrediction(raw)
		s.store(ctx, logger, span, models.KindDelay, key, value)
	}

	result := models.DelayPrediction{
		ID:                    s.newID(),
		PredictedDelayMinutes: value,
		Features:              features,
		Origin:                origin,
		Destination:           destination,
		Cached:                cached,
	}
	s.record(ctx, logger, span, models.Record{
		ID:              result.ID,
		Kind:            models.KindDelay,
		OriginIATA:      origin.IATA,
		DestinationIATA: destination.IATA,
		Value:           value,
		Features:        body,
		CreatedAt:       s.now().UTC(),
	})

	span.SetAttributes(attribute.Float64("prediction.delay_minutes", value), attribute.Bool("prediction.cached", cached))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("delay predicted", zap.String("prediction_id", result.ID), zap.Float64("delay_minutes", value), zap.Bool("cached", cached))
	return result, nil
}

func (s *PredictionService) PredictFare(ctx context.Context, req models.FareRequest) (models.FarePrediction, error) {
	const op = "service.PredictFare"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	originIATA := flightfeatures.NormalizeIATACode(req.OriginIATA)
	destinationIATA := flightfeatures.NormalizeIATACode(req.DestinationIATA)
	span.SetAttributes(
		attribute.String("prediction.origin_iata", originIATA),
		attribute.String("prediction.destination_iata", destinationIATA),
		attribute.String("prediction.airline", req.Airline),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin_iata", originIATA),
		zap.String("destination_iata", destinationIATA),
		zap.String("airline", req.Airline),
	)

	now := s.now()
	query, err := s.fareQuery(req, originIATA, destinationIATA)
	if err == nil {
		err = flightfeatures.ValidateFare(query, now)
	}
	if err != nil {
		logger.Warn("invalid fare request", zap.Error(err))
		span.SetStatus(otelcodes.Error, "invalid request")
		return models.FarePrediction{}, fmt.Errorf("%s: %w", op, err)
	}

	origin, destination, err := s.resolveRoute(ctx, originIATA, destinationIATA)
	if err != nil {
		logger.Warn("failed to resolve airports", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to resolve airports")
		return models.FarePrediction{}, fmt.Errorf("%s: %w", op, err)
	}
	query.Origin = origin
	query.Destination = destination

	features, err := flightfeatures.DeriveFare(query, now)
	if err != nil {
		logger.Warn("failed to derive fare features", zap.Error(err))
		span.SetStatus(otelcodes.Error, "invalid request")
		return models.FarePrediction{}, fmt.Errorf("%s: %w", op, err)
	}

	body, key, err := fingerprint(features)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to encode features")
		return models.FarePrediction{}, fmt.Errorf("%s: %w", op, err)
	}

	value, cached := s.cached(ctx, logger, span, models.KindFare, key)
	if !cached {
		raw, err := s.model.PredictFare(ctx, features)
		if err != nil {
			logger.Warn("fare model call failed", zap.Error(err))
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "fare model call failed")
			return models.FarePrediction{}, fmt.Errorf("%s: %w", op, err)
		}
		value = roundPrediction(raw)
		s.store(ctx, logger, span, models.KindFare, key, value)
	}

	result := models.FarePrediction{
		ID:            s.newID(),
		PredictedFare: value,
		Features:      features,
		Origin:        origin,
		Destination:   destination,
		Cached:        cached,
	}
	s.record(ctx, logger, span, models.Record{
		ID:              result.ID,
		Kind:            models.KindFare,
		OriginIATA:      origin.IATA,
		DestinationIATA: destination.IATA,
		Value:           value,
		Features:        body,
		CreatedAt:       now.UTC(),
	})

	span.SetAttributes(attribute.Float64("prediction.fare", value), attribute.Bool("prediction.cached", cached))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("fare predicted", zap.String("prediction_id", result.ID), zap.Float64("fare", value), zap.Bool("cached", cached))
	return result, nil
}

// ListPredictions returns the most recent stored predictions, newest first.
// An empty kind lists both kinds.
func (s *PredictionService) ListPredictions(ctx context.Context, kind string, limit int) ([]models.Record, error) {
	const op = "service.ListPredictions"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("kind", kind), zap.Int("limit", limit))

	var k models.Kind
	if kind != "" {
		parsed, ok := models.ParseKind(kind)
		if !ok {
			span.SetStatus(otelcodes.Error, "invalid kind")
			return nil, fmt.Errorf("%s: %w: %q", op, derr.ErrInvalidKind, kind)
		}
		k = parsed
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if s.history == nil {
		return []models.Record{}, nil
	}

	records, err := s.history.ListRecent(ctx, k, limit)
	if err != nil {
		logger.Warn("failed to list predictions", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to list predictions")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	span.SetStatus(otelcodes.Ok, "ok")
	return records, nil
}

func (s *PredictionService) flightQuery(req models.DelayRequest, originIATA, destinationIATA string) (flightfeatures.FlightQuery, error) {
	scheduledDeparture, err := flightfeatures.ParseTimestamp(req.ScheduledDeparture, s.location)
	if err != nil {
		return flightfeatures.FlightQuery{}, fmt.Errorf("scheduled_departure: %w", err)
	}
	scheduledArrival, err := flightfeatures.ParseTimestamp(req.ScheduledArrival, s.location)
	if err != nil {
		return flightfeatures.FlightQuery{}, fmt.Errorf("scheduled_arrival: %w", err)
	}

	query := flightfeatures.FlightQuery{
		Origin:             flightfeatures.Airport{IATA: originIATA},
		Destination:        flightfeatures.Airport{IATA: destinationIATA},
		ScheduledDeparture: scheduledDeparture,
		ScheduledArrival:   scheduledArrival,
	}

	if req.ActualDeparture != "" {
		actual, err := flightfeatures.ParseTimestamp(req.ActualDeparture, s.location)
		if err != nil {
			return flightfeatures.FlightQuery{}, fmt.Errorf("actual_departure: %w", err)
		}
		query.ActualDeparture = &actual
	}

	return query, nil
}

func (s *PredictionService) fareQuery(req models.FareRequest, originIATA, destinationIATA string) (flightfeatures.FareQuery, error) {
	departure, err := flightfeatures.ParseTimestamp(req.Departure, s.location)
	if err != nil {
		return flightfeatures.FareQuery{}, fmt.Errorf("departure: %w", err)
	}
	arrival, err := flightfeatures.ParseTimestamp(req.Arrival, s.location)
	if err != nil {
		return flightfeatures.FareQuery{}, fmt.Errorf("arrival: %w", err)
	}

	return flightfeatures.FareQuery{
		Airline:     flightfeatures.Airline{Name: req.Airline},
		Origin:      flightfeatures.Airport{IATA: originIATA},
		Destination: flightfeatures.Airport{IATA: destinationIATA},
		Departure:   departure,
		Arrival:     arrival,
		Stops:       req.Stops,
		Class:       flightfeatures.CabinClass(req.Class),
	}, nil
}

func (s *PredictionService) resolveRoute(ctx context.Context, originIATA, destinationIATA string) (flightfeatures.Airport, flightfeatures.Airport, error) {
	var origin, destination flightfeatures.Airport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.airports.GetAirport(gctx, originIATA)
		if err != nil {
			return fmt.Errorf("origin %s: %w", originIATA, err)
		}
		origin = a
		return nil
	})
	g.Go(func() error {
		a, err := s.airports.GetAirport(gctx, destinationIATA)
		if err != nil {
			return fmt.Errorf("destination %s: %w", destinationIATA, err)
		}
		destination = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return flightfeatures.Airport{}, flightfeatures.Airport{}, err
	}

	return origin, destination, nil
}

func (s *PredictionService) cached(ctx context.Context, logger *zap.Logger, span trace.Span, kind models.Kind, key string) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}

	value, err := s.cache.Get(ctx, kind, key)
	if err == nil {
		logger.Info("prediction cache hit")
		span.AddEvent("prediction.cache.hit")
		return value, true
	}
	if errors.Is(err, derr.ErrPredictionNotFound) {
		logger.Info("prediction cache miss")
		span.AddEvent("prediction.cache.miss")
	} else {
		logger.Warn("redis cache read failed", zap.Error(err))
		span.RecordError(err)
	}
	return 0, false
}

func (s *PredictionService) store(ctx context.Context, logger *zap.Logger, span trace.Span, kind models.Kind, key string, value float64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, kind, key, value, s.cacheTTL); err != nil {
		logger.Warn("redis cache write failed", zap.Error(err))
		span.RecordError(err)
	}
}

func (s *PredictionService) record(ctx context.Context, logger *zap.Logger, span trace.Span, rec models.Record) {
	if s.history != nil {
		if err := s.history.Save(ctx, rec); err != nil {
			logger.Warn("failed to store prediction", zap.Error(err), zap.String("prediction_id", rec.ID))
			span.RecordError(err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishCompleted(ctx, rec); err != nil {
			logger.Warn("failed to publish prediction event", zap.Error(err), zap.String("prediction_id", rec.ID))
			span.AddEvent("prediction.publish.error", trace.WithAttributes(attribute.String("prediction.id", rec.ID)))
			span.RecordError(err)
		}
	}
}

type delayCacheInput struct {
	Origin      string                         `json:"origin"`
	Destination string                         `json:"destination"`
	Features    flightfeatures.DerivedFeatures `json:"features"`
}

// fingerprint returns the JSON encoding of v and its sha256 hex digest.
func fingerprint(v any) ([]byte, string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("marshal features: %w", err)
	}
	sum := sha256.Sum256(body)
	return body, hex.EncodeToString(sum[:]), nil
}

func roundPrediction(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
