package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/application/service"
	derr "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type memoryRepo struct {
	airports map[string]models.Airport
}

func (r *memoryRepo) GetByIATA(ctx context.Context, iata string) (models.Airport, error) {
	a, ok := r.airports[iata]
	if !ok {
		return models.Airport{}, derr.ErrAirportNotFound
	}
	return a, nil
}

func (r *memoryRepo) List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, error) {
	out := make([]models.Airport, 0, len(r.airports))
	for _, a := range r.airports {
		out = append(out, a)
	}
	return out, nil
}

func (r *memoryRepo) Upsert(ctx context.Context, airport models.Airport) error {
	r.airports[airport.IATA] = airport
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, iata string) error {
	if _, ok := r.airports[iata]; !ok {
		return derr.ErrAirportNotFound
	}
	delete(r.airports, iata)
	return nil
}

func (r *memoryRepo) ListAirlines(ctx context.Context) ([]models.Airline, error) {
	return []models.Airline{{Code: "QF", Name: "Qantas"}}, nil
}

func (r *memoryRepo) UpsertAirline(ctx context.Context, airline models.Airline) error {
	return nil
}

func newTestServer() *serverAPI {
	repo := &memoryRepo{airports: map[string]models.Airport{
		"MEL": {IATA: "MEL", Name: "Melbourne Airport", City: "Melbourne", Latitude: -37.6733, Longitude: 144.8433},
	}}
	svc := service.NewAirportService(zap.NewNop(), repo, nil, nil, 0)
	return &serverAPI{log: zap.NewNop(), service: svc}
}

func TestGetAirport(t *testing.T) {
	s := newTestServer()

	resp, err := s.GetAirport(context.Background(), &airportv1.GetAirportRequest{IATA: "mel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetAirport().IATA != "MEL" || resp.GetAirport().City != "Melbourne" {
		t.Fatalf("unexpected airport: %+v", resp.GetAirport())
	}

	_, err = s.GetAirport(context.Background(), &airportv1.GetAirportRequest{IATA: "XYZ"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	_, err = s.GetAirport(context.Background(), &airportv1.GetAirportRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestUpsertAndDeleteAirport(t *testing.T) {
	s := newTestServer()

	resp, err := s.UpsertAirport(context.Background(), &airportv1.UpsertAirportRequest{Airport: &airportv1.Airport{
		IATA: "syd", Name: "Sydney Airport", City: "Sydney", Latitude: -33.9461, Longitude: 151.1772,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Airport.IATA != "SYD" {
		t.Fatalf("expected normalized code, got %q", resp.Airport.IATA)
	}

	_, err = s.UpsertAirport(context.Background(), &airportv1.UpsertAirportRequest{Airport: &airportv1.Airport{
		IATA: "SYD", Name: "Sydney Airport", Latitude: 120, Longitude: 151,
	}})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	if _, err := s.DeleteAirport(context.Background(), &airportv1.DeleteAirportRequest{IATA: "SYD"}); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	_, err = s.DeleteAirport(context.Background(), &airportv1.DeleteAirportRequest{IATA: "SYD"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestSyncReferenceData_WithoutSourceIsUnavailable(t *testing.T) {
	s := newTestServer()

	_, err := s.SyncReferenceData(context.Background(), &airportv1.SyncReferenceDataRequest{})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestMapAirportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "not_found", err: derr.ErrAirportNotFound, code: codes.NotFound},
		{name: "invalid", err: derr.ErrInvalidAirport, code: codes.InvalidArgument},
		{name: "unavailable", err: derr.ErrSourceUnavailable, code: codes.Unavailable},
		{name: "deadline", err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
		{name: "canceled", err: context.Canceled, code: codes.Canceled},
		{name: "internal", err: errors.New("boom"), code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAirportError(tt.err)
			if status.Code(got) != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, status.Code(got))
			}
		})
	}
}

func TestValidationMessage(t *testing.T) {
	err := errors.New("service.UpsertAirport: invalid airport: SYD has no name")
	if got := validationMessage(err); got != "invalid airport: SYD has no name" {
		t.Fatalf("unexpected message: %q", got)
	}
}
