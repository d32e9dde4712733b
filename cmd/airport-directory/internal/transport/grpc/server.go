package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/application/service"
	derr "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type serverAPI struct {
	airportv1.UnimplementedAirportDirectoryServiceServer
	log     *zap.Logger
	service *service.AirportService
}

func Register(gRPCServer *grpc.Server, log *zap.Logger, airportService *service.AirportService) {
	airportv1.RegisterAirportDirectoryServiceServer(gRPCServer, &serverAPI{log: log, service: airportService})
}

func (s *serverAPI) GetAirport(ctx context.Context, req *airportv1.GetAirportRequest) (*airportv1.GetAirportResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.GetIATA()) == "" {
		return nil, status.Error(codes.InvalidArgument, "iata is required")
	}

	a, err := s.service.GetAirport(ctx, req.GetIATA())
	if err != nil {
		if !errors.Is(err, derr.ErrAirportNotFound) {
			s.log.Error("GetAirport failed", zap.String("iata", req.GetIATA()), zap.Error(err))
		}
		return nil, mapAirportError(err)
	}

	return &airportv1.GetAirportResponse{Airport: toContractAirport(a)}, nil
}

func (s *serverAPI) ListAirports(ctx context.Context, req *airportv1.ListAirportsRequest) (*airportv1.ListAirportsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}

	airports, err := s.service.ListAirports(ctx, models.AirportFilter{Limit: int(req.Limit), Query: req.Query})
	if err != nil {
		s.log.Error("ListAirports failed", zap.Int32("limit", req.Limit), zap.String("query", req.Query), zap.Error(err))
		return nil, mapAirportError(err)
	}

	resp := &airportv1.ListAirportsResponse{Airports: make([]*airportv1.Airport, 0, len(airports))}
	for _, a := range airports {
		resp.Airports = append(resp.Airports, toContractAirport(a))
	}

	return resp, nil
}

func (s *serverAPI) UpsertAirport(ctx context.Context, req *airportv1.UpsertAirportRequest) (*airportv1.UpsertAirportResponse, error) {
	if req == nil || req.Airport == nil {
		return nil, status.Error(codes.InvalidArgument, "airport is required")
	}

	saved, err := s.service.UpsertAirport(ctx, models.Airport{
		IATA:      req.Airport.IATA,
		Name:      req.Airport.Name,
		City:      req.Airport.City,
		Latitude:  req.Airport.Latitude,
		Longitude: req.Airport.Longitude,
	})
	if err != nil {
		if !errors.Is(err, derr.ErrInvalidAirport) {
			s.log.Error("UpsertAirport failed", zap.String("iata", req.Airport.IATA), zap.Error(err))
		}
		return nil, mapAirportError(err)
	}

	return &airportv1.UpsertAirportResponse{Airport: toContractAirport(saved)}, nil
}

func (s *serverAPI) DeleteAirport(ctx context.Context, req *airportv1.DeleteAirportRequest) (*airportv1.DeleteAirportResponse, error) {
	if req == nil || strings.TrimSpace(req.IATA) == "" {
		return nil, status.Error(codes.InvalidArgument, "iata is required")
	}

	if err := s.service.DeleteAirport(ctx, req.IATA); err != nil {
		if !errors.Is(err, derr.ErrAirportNotFound) {
			s.log.Error("DeleteAirport failed", zap.String("iata", req.IATA), zap.Error(err))
		}
		return nil, mapAirportError(err)
	}

	return &airportv1.DeleteAirportResponse{}, nil
}

func (s *serverAPI) ListAirlines(ctx context.Context, _ *airportv1.ListAirlinesRequest) (*airportv1.ListAirlinesResponse, error) {
	airlines, err := s.service.ListAirlines(ctx)
	if err != nil {
		s.log.Error("ListAirlines failed", zap.Error(err))
		return nil, mapAirportError(err)
	}

	resp := &airportv1.ListAirlinesResponse{Airlines: make([]*airportv1.Airline, 0, len(airlines))}
	for _, a := range airlines {
		resp.Airlines = append(resp.Airlines, &airportv1.Airline{Code: a.Code, Name: a.Name})
	}

	return resp, nil
}

func (s *serverAPI) SyncReferenceData(ctx context.Context, _ *airportv1.SyncReferenceDataRequest) (*airportv1.SyncReferenceDataResponse, error) {
	report, err := s.service.SyncReferenceData(ctx)
	if err != nil {
		s.log.Error("SyncReferenceData failed", zap.Error(err))
		return nil, mapAirportError(err)
	}

	return &airportv1.SyncReferenceDataResponse{
		AirportsImported: int32(report.AirportsImported),
		AirportsRejected: int32(report.AirportsRejected),
		AirlinesImported: int32(report.AirlinesImported),
		AirlinesRejected: int32(report.AirlinesRejected),
	}, nil
}

func toContractAirport(a models.Airport) *airportv1.Airport {
	return &airportv1.Airport{
		IATA:      a.IATA,
		Name:      a.Name,
		City:      a.City,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

func mapAirportError(err error) error {
	switch {
	case errors.Is(err, derr.ErrAirportNotFound):
		return status.Error(codes.NotFound, "airport not found")
	case errors.Is(err, derr.ErrInvalidAirport), errors.Is(err, derr.ErrInvalidAirline):
		return status.Error(codes.InvalidArgument, validationMessage(err))
	case errors.Is(err, derr.ErrSourceUnavailable):
		return status.Error(codes.Unavailable, "reference source unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// validationMessage drops the "service.Op: " prefix added by the service layer.
func validationMessage(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "service.") {
		if _, rest, ok := strings.Cut(msg, ": "); ok {
			return rest
		}
	}
	return msg
}
