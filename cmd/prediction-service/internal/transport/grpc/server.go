package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/application/service"
	derr "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/models"
	predictionv1 "github.com/flightforesight/flightforesight/contracts/prediction/v1"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type serverAPI struct {
	predictionv1.UnimplementedPredictionServiceServer
	log     *zap.Logger
	service *service.PredictionService
}

func Register(gRPCServer *grpc.Server, log *zap.Logger, predictionService *service.PredictionService) {
	predictionv1.RegisterPredictionServiceServer(gRPCServer, &serverAPI{
		log:     log,
		service: predictionService,
	})
}

func (s *serverAPI) PredictDelay(ctx context.Context, req *predictionv1.PredictDelayRequest) (*predictionv1.PredictDelayResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.GetOriginIATA()) == "" {
		return nil, status.Error(codes.InvalidArgument, "origin_iata is required")
	}
	if strings.TrimSpace(req.GetDestinationIATA()) == "" {
		return nil, status.Error(codes.InvalidArgument, "destination_iata is required")
	}
	if strings.TrimSpace(req.ScheduledDeparture) == "" || strings.TrimSpace(req.ScheduledArrival) == "" {
		return nil, status.Error(codes.InvalidArgument, "scheduled_departure and scheduled_arrival are required")
	}

	result, err := s.service.PredictDelay(ctx, models.DelayRequest{
		OriginIATA:         req.OriginIATA,
		DestinationIATA:    req.DestinationIATA,
		ScheduledDeparture: strings.TrimSpace(req.ScheduledDeparture),
		ScheduledArrival:   strings.TrimSpace(req.ScheduledArrival),
		ActualDeparture:    strings.TrimSpace(req.ActualDeparture),
	})
	if err != nil {
		return nil, mapPredictionError(err)
	}

	f := result.Features
	return &predictionv1.PredictDelayResponse{
		PredictionID:          result.ID,
		PredictedDelayMinutes: result.PredictedDelayMinutes,
		Features: &predictionv1.DelayFeatures{
			Month:                  int32(f.Month),
			Day:                    int32(f.Day),
			DayOfWeek:              int32(f.DayOfWeek),
			ScheduledDepartureHHMM: int32(f.ScheduledDepartureHHMM),
			ScheduledArrivalHHMM:   int32(f.ScheduledArrivalHHMM),
			DepartureDelayMinutes:  int32(f.DepartureDelayMinutes),
			DistanceKm:             f.DistanceKm,
			AirTimeMinutes:         f.AirTimeMinutes,
		},
		Origin:      toAirport(result.Origin),
		Destination: toAirport(result.Destination),
		Cached:      result.Cached,
	}, nil
}

func (s *serverAPI) PredictFare(ctx context.Context, req *predictionv1.PredictFareRequest) (*predictionv1.PredictFareResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.Airline) == "" {
		return nil, status.Error(codes.InvalidArgument, "airline is required")
	}
	if strings.TrimSpace(req.GetOriginIATA()) == "" || strings.TrimSpace(req.GetDestinationIATA()) == "" {
		return nil, status.Error(codes.InvalidArgument, "origin_iata and destination_iata are required")
	}
	if req.Stops < 0 {
		return nil, status.Error(codes.InvalidArgument, "stops must not be negative")
	}

	result, err := s.service.PredictFare(ctx, models.FareRequest{
		Airline:         strings.TrimSpace(req.Airline),
		OriginIATA:      req.OriginIATA,
		DestinationIATA: req.DestinationIATA,
		Departure:       strings.TrimSpace(req.Departure),
		Arrival:         strings.TrimSpace(req.Arrival),
		Stops:           int(req.Stops),
		Class:           req.Class,
	})
	if err != nil {
		return nil, mapPredictionError(err)
	}

	f := result.Features
	return &predictionv1.PredictFareResponse{
		PredictionID:  result.ID,
		PredictedFare: result.PredictedFare,
		Features: &predictionv1.FareFeatures{
			Airline:         f.Airline,
			SourceCity:      f.SourceCity,
			DestinationCity: f.DestinationCity,
			DepartureTime:   string(f.DepartureBucket),
			ArrivalTime:     string(f.ArrivalBucket),
			Stops:           string(f.Stops),
			Class:           string(f.Class),
			DurationHours:   f.DurationHours,
			DaysLeft:        int32(f.DaysLeft),
		},
		Origin:      toAirport(result.Origin),
		Destination: toAirport(result.Destination),
		Cached:      result.Cached,
	}, nil
}

func (s *serverAPI) ListPredictions(ctx context.Context, req *predictionv1.ListPredictionsRequest) (*predictionv1.ListPredictionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	records, err := s.service.ListPredictions(ctx, strings.ToLower(strings.TrimSpace(req.Kind)), int(req.Limit))
	if err != nil {
		return nil, mapPredictionError(err)
	}

	resp := &predictionv1.ListPredictionsResponse{
		Predictions: make([]*predictionv1.PredictionRecord, 0, len(records)),
	}
	for _, r := range records {
		resp.Predictions = append(resp.Predictions, &predictionv1.PredictionRecord{
			ID:              r.ID,
			Kind:            string(r.Kind),
			OriginIATA:      r.OriginIATA,
			DestinationIATA: r.DestinationIATA,
			Value:           r.Value,
			CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return resp, nil
}

func toAirport(a flightfeatures.Airport) *predictionv1.Airport {
	return &predictionv1.Airport{
		IATA:      a.IATA,
		Name:      a.Name,
		City:      a.City,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

func mapPredictionError(err error) error {
	switch {
	case flightfeatures.IsValidationError(err):
		return status.Error(codes.InvalidArgument, validationMessage(err))
	case errors.Is(err, derr.ErrInvalidKind):
		return status.Error(codes.InvalidArgument, "kind must be delay or fare")
	case errors.Is(err, derr.ErrAirportNotFound):
		return status.Error(codes.NotFound, "airport not found")
	case errors.Is(err, derr.ErrSourceTemporary):
		return status.Error(codes.Unavailable, "source temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// validationMessage drops the "service.X: " prefix so callers see only the
// rejected field and rule.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 && strings.HasPrefix(msg, "service.") {
		return msg[i+2:]
	}
	return msg
}
