package airport

import (
	"context"
	"errors"
	"fmt"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/errors"
	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Client struct {
	client  airportv1.AirportDirectoryServiceClient
	timeout time.Duration
}

func NewClient(client airportv1.AirportDirectoryServiceClient, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Client{
		client:  client,
		timeout: timeout,
	}
}

func (c *Client) GetAirport(ctx context.Context, iata string) (flightfeatures.Airport, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.GetAirport(reqCtx, &airportv1.GetAirportRequest{IATA: iata})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return flightfeatures.Airport{}, err
		}
		st, ok := status.FromError(err)
		if ok {
			switch st.Code() {
			case codes.NotFound:
				return flightfeatures.Airport{}, derr.ErrAirportNotFound
			case codes.Unavailable, codes.DeadlineExceeded:
				return flightfeatures.Airport{}, derr.ErrSourceTemporary
			}
		}
		return flightfeatures.Airport{}, fmt.Errorf("get airport from airport-directory: %w", err)
	}

	a := resp.GetAirport()
	if a == nil || a.IATA == "" {
		return flightfeatures.Airport{}, fmt.Errorf("airport-directory returned incomplete payload")
	}

	return flightfeatures.Airport{
		Name:      a.Name,
		IATA:      flightfeatures.NormalizeIATACode(a.IATA),
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		City:      a.City,
	}, nil
}
