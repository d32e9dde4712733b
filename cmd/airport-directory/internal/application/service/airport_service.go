package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/ports"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "airport-directory/service"

	DefaultListLimit = 100
	MaxListLimit     = 5000
)

type AirportService struct {
	log      *zap.Logger
	repo     ports.AirportRepository
	cache    ports.AirportCache
	source   ports.ReferenceSource
	cacheTTL time.Duration
}

func NewAirportService(log *zap.Logger, repo ports.AirportRepository, cache ports.AirportCache, source ports.ReferenceSource, cacheTTL time.Duration) *AirportService {
	if log == nil {
		log = zap.NewNop()
	}

	return &AirportService{
		log:      log,
		repo:     repo,
		cache:    cache,
		source:   source,
		cacheTTL: cacheTTL,
	}
}

func (s *AirportService) GetAirport(ctx context.Context, iata string) (models.Airport, error) {
	const op = "service.GetAirport"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	code := flightfeatures.NormalizeIATACode(iata)
	span.SetAttributes(attribute.String("airport.iata", code))
	logger := s.log.With(zap.String("op", op), zap.String("iata", code))

	if !flightfeatures.ValidIATACode(code) {
		span.SetStatus(otelcodes.Error, "invalid iata")
		return models.Airport{}, fmt.Errorf("%s: %w: iata %q", op, derr.ErrInvalidAirport, iata)
	}

	if s.cache != nil {
		airport, err := s.cache.GetByIATA(ctx, code)
		if err == nil {
			logger.Debug("airport loaded from redis cache")
			span.AddEvent("airport.cache.hit")
			return airport, nil
		}
		if !errors.Is(err, derr.ErrAirportNotFound) {
			logger.Warn("redis cache read failed", zap.Error(err))
			span.RecordError(err)
		}
	}

	airport, err := s.repo.GetByIATA(ctx, code)
	if err != nil {
		if errors.Is(err, derr.ErrAirportNotFound) {
			span.SetStatus(otelcodes.Error, "airport not found")
			return models.Airport{}, derr.ErrAirportNotFound
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "repo read failed")
		return models.Airport{}, fmt.Errorf("%s: get airport from repo: %w", op, err)
	}
	logger.Debug("airport loaded from db")

	if s.cache != nil {
		if err := s.cache.Set(ctx, airport, s.cacheTTL); err != nil {
			logger.Warn("redis cache write failed", zap.Error(err))
			span.RecordError(err)
		}
	}

	span.SetStatus(otelcodes.Ok, "ok")
	return airport, nil
}

func (s *AirportService) ListAirports(ctx context.Context, filter models.AirportFilter) ([]models.Airport, error) {
	const op = "service.ListAirports"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	filter.Query = strings.TrimSpace(filter.Query)
	span.SetAttributes(attribute.Int("airport.limit", filter.Limit), attribute.String("airport.query", filter.Query))

	airports, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "repo list failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	span.SetStatus(otelcodes.Ok, "ok")
	return airports, nil
}

func (s *AirportService) UpsertAirport(ctx context.Context, airport models.Airport) (models.Airport, error) {
	const op = "service.UpsertAirport"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	airport = NormalizeAirport(airport)
	span.SetAttributes(attribute.String("airport.iata", airport.IATA))
	logger := s.log.With(zap.String("op", op), zap.String("iata", airport.IATA))

	if err := ValidateAirport(airport); err != nil {
		logger.Warn("airport rejected", zap.Error(err))
		span.SetStatus(otelcodes.Error, "invalid airport")
		return models.Airport{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Upsert(ctx, airport); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "repo upsert failed")
		return models.Airport{}, fmt.Errorf("%s: upsert airport: %w", op, err)
	}
	s.invalidate(ctx, logger, airport.IATA)

	logger.Info("airport saved")
	span.SetStatus(otelcodes.Ok, "ok")
	return airport, nil
}

func (s *AirportService) DeleteAirport(ctx context.Context, iata string) error {
	const op = "service.DeleteAirport"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	code := flightfeatures.NormalizeIATACode(iata)
	span.SetAttributes(attribute.String("airport.iata", code))
	logger := s.log.With(zap.String("op", op), zap.String("iata", code))

	if !flightfeatures.ValidIATACode(code) {
		span.SetStatus(otelcodes.Error, "invalid iata")
		return fmt.Errorf("%s: %w: iata %q", op, derr.ErrInvalidAirport, iata)
	}

	if err := s.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, derr.ErrAirportNotFound) {
			span.SetStatus(otelcodes.Error, "airport not found")
			return derr.ErrAirportNotFound
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "repo delete failed")
		return fmt.Errorf("%s: delete airport: %w", op, err)
	}
	s.invalidate(ctx, logger, code)

	logger.Info("airport deleted")
	span.SetStatus(otelcodes.Ok, "ok")
	return nil
}

func (s *AirportService) ListAirlines(ctx context.Context) ([]models.Airline, error) {
	const op = "service.ListAirlines"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	airlines, err := s.repo.ListAirlines(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "repo list failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	span.SetStatus(otelcodes.Ok, "ok")
	return airlines, nil
}

// SyncReferenceData pulls both reference feeds and upserts every valid
// record. Invalid records are counted and skipped, a storage failure aborts
// the run.
func (s *AirportService) SyncReferenceData(ctx context.Context) (models.SyncReport, error) {
	const op = "service.SyncReferenceData"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(zap.String("op", op))

	if s.source == nil {
		span.SetStatus(otelcodes.Error, "no reference source")
		return models.SyncReport{}, fmt.Errorf("%s: %w: reference source is not configured", op, derr.ErrSourceUnavailable)
	}

	var (
		airports []models.Airport
		airlines []models.Airline
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		airports, err = s.source.FetchAirports(gctx)
		if err != nil {
			return fmt.Errorf("fetch airports: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		airlines, err = s.source.FetchAirlines(gctx)
		if err != nil {
			return fmt.Errorf("fetch airlines: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Warn("reference feed fetch failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "fetch failed")
		return models.SyncReport{}, fmt.Errorf("%s: %w", op, err)
	}

	var report models.SyncReport
	for _, a := range airports {
		a = NormalizeAirport(a)
		if err := ValidateAirport(a); err != nil {
			report.AirportsRejected++
			logger.Debug("reference airport rejected", zap.String("iata", a.IATA), zap.Error(err))
			continue
		}
		if err := s.repo.Upsert(ctx, a); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "repo upsert failed")
			return report, fmt.Errorf("%s: upsert airport %s: %w", op, a.IATA, err)
		}
		s.invalidate(ctx, logger, a.IATA)
		report.AirportsImported++
	}

	for _, a := range airlines {
		a = NormalizeAirline(a)
		if err := ValidateAirline(a); err != nil {
			report.AirlinesRejected++
			logger.Debug("reference airline rejected", zap.String("code", a.Code), zap.Error(err))
			continue
		}
		if err := s.repo.UpsertAirline(ctx, a); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "repo upsert failed")
			return report, fmt.Errorf("%s: upsert airline %s: %w", op, a.Code, err)
		}
		report.AirlinesImported++
	}

	span.SetAttributes(
		attribute.Int("sync.airports_imported", report.AirportsImported),
		attribute.Int("sync.airports_rejected", report.AirportsRejected),
		attribute.Int("sync.airlines_imported", report.AirlinesImported),
		attribute.Int("sync.airlines_rejected", report.AirlinesRejected),
	)
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("reference data synced",
		zap.Int("airports_imported", report.AirportsImported),
		zap.Int("airports_rejected", report.AirportsRejected),
		zap.Int("airlines_imported", report.AirlinesImported),
		zap.Int("airlines_rejected", report.AirlinesRejected),
	)
	return report, nil
}

func (s *AirportService) invalidate(ctx context.Context, logger *zap.Logger, iata string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, iata); err != nil {
		logger.Warn("redis cache invalidation failed", zap.Error(err))
	}
}
