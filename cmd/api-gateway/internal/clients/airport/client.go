package airport

import (
	"context"
	"strings"
	"time"

	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
)

type Client struct {
	client      airportv1.AirportDirectoryServiceClient
	timeout     time.Duration
	syncTimeout time.Duration
}

// NewClient wraps the directory client. Reference syncs download whole feeds
// and get their own, longer timeout.
func NewClient(client airportv1.AirportDirectoryServiceClient, timeout, syncTimeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if syncTimeout < timeout {
		syncTimeout = timeout
	}

	return &Client{
		client:      client,
		timeout:     timeout,
		syncTimeout: syncTimeout,
	}
}

func (c *Client) GetAirport(ctx context.Context, iata string) (*airportv1.GetAirportResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.GetAirport(reqCtx, &airportv1.GetAirportRequest{IATA: strings.TrimSpace(iata)})
}

func (c *Client) ListAirports(ctx context.Context, limit int32, query string) (*airportv1.ListAirportsResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.ListAirports(reqCtx, &airportv1.ListAirportsRequest{
		Limit: limit,
		Query: strings.TrimSpace(query),
	})
}

func (c *Client) UpsertAirport(ctx context.Context, airport *airportv1.Airport) (*airportv1.UpsertAirportResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.UpsertAirport(reqCtx, &airportv1.UpsertAirportRequest{Airport: airport})
}

func (c *Client) DeleteAirport(ctx context.Context, iata string) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.DeleteAirport(reqCtx, &airportv1.DeleteAirportRequest{IATA: strings.TrimSpace(iata)})
	return err
}

func (c *Client) ListAirlines(ctx context.Context) (*airportv1.ListAirlinesResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.ListAirlines(reqCtx, &airportv1.ListAirlinesRequest{})
}

func (c *Client) SyncReferenceData(ctx context.Context) (*airportv1.SyncReferenceDataResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.syncTimeout)
	defer cancel()

	return c.client.SyncReferenceData(reqCtx, &airportv1.SyncReferenceDataRequest{})
}
