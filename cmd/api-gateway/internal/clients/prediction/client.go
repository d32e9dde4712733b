package prediction

import (
	"context"
	"time"

	predictionv1 "github.com/flightforesight/flightforesight/contracts/prediction/v1"
)

type Client struct {
	client  predictionv1.PredictionServiceClient
	timeout time.Duration
}

func NewClient(client predictionv1.PredictionServiceClient, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		client:  client,
		timeout: timeout,
	}
}

func (c *Client) PredictDelay(ctx context.Context, req *predictionv1.PredictDelayRequest) (*predictionv1.PredictDelayResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.PredictDelay(reqCtx, req)
}

func (c *Client) PredictFare(ctx context.Context, req *predictionv1.PredictFareRequest) (*predictionv1.PredictFareResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.PredictFare(reqCtx, req)
}

func (c *Client) ListPredictions(ctx context.Context, kind string, limit int32) (*predictionv1.ListPredictionsResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.ListPredictions(reqCtx, &predictionv1.ListPredictionsRequest{Kind: kind, Limit: limit})
}
