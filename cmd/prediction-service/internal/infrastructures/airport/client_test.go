package airport

import (
	"context"
	"errors"
	"testing"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/errors"
	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type directoryClientMock struct {
	airportv1.AirportDirectoryServiceClient
	resp *airportv1.GetAirportResponse
	err  error
	iata string
}

func (m *directoryClientMock) GetAirport(ctx context.Context, in *airportv1.GetAirportRequest, opts ...grpc.CallOption) (*airportv1.GetAirportResponse, error) {
	m.iata = in.GetIATA()
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestClient_GetAirport_MapsNotFound(t *testing.T) {
	c := NewClient(&directoryClientMock{err: status.Error(codes.NotFound, "not found")}, time.Second)

	_, err := c.GetAirport(context.Background(), "XXX")
	if !errors.Is(err, derr.ErrAirportNotFound) {
		t.Fatalf("unexpected error: got %v want %v", err, derr.ErrAirportNotFound)
	}
}

func TestClient_GetAirport_MapsUnavailable(t *testing.T) {
	c := NewClient(&directoryClientMock{err: status.Error(codes.Unavailable, "down")}, time.Second)

	_, err := c.GetAirport(context.Background(), "SYD")
	if !errors.Is(err, derr.ErrSourceTemporary) {
		t.Fatalf("unexpected error: got %v want %v", err, derr.ErrSourceTemporary)
	}
}

func TestClient_GetAirport_MapsResponse(t *testing.T) {
	mock := &directoryClientMock{resp: &airportv1.GetAirportResponse{Airport: &airportv1.Airport{
		IATA:      "syd",
		Name:      "Sydney Kingsford Smith",
		City:      "Sydney",
		Latitude:  -33.9461,
		Longitude: 151.1772,
	}}}
	c := NewClient(mock, time.Second)

	got, err := c.GetAirport(context.Background(), "SYD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.iata != "SYD" {
		t.Fatalf("unexpected requested iata: %s", mock.iata)
	}
	if got.IATA != "SYD" || got.City != "Sydney" || got.Latitude != -33.9461 {
		t.Fatalf("unexpected airport: %+v", got)
	}
}

func TestClient_GetAirport_IncompletePayload(t *testing.T) {
	c := NewClient(&directoryClientMock{resp: &airportv1.GetAirportResponse{}}, time.Second)

	if _, err := c.GetAirport(context.Background(), "SYD"); err == nil {
		t.Fatal("expected incomplete payload error")
	}
}
