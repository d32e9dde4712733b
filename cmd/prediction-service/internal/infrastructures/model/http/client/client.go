package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/model/dto"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/model/mappers"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
)

const (
	delayPath = "/delay/predict/"
	farePath  = "/predict/"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "http://localhost:8000"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) PredictDelay(ctx context.Context, features flightfeatures.DerivedFeatures, origin, destination string) (float64, error) {
	var payload dto.DelayResponse
	if err := c.post(ctx, delayPath, mappers.ToDelayRequest(features, origin, destination), &payload); err != nil {
		return 0, err
	}
	return mappers.DelayValue(payload)
}

func (c *Client) PredictFare(ctx context.Context, features flightfeatures.FareFeatures) (float64, error) {
	var payload dto.FareResponse
	if err := c.post(ctx, farePath, mappers.ToFareRequest(features), &payload); err != nil {
		return 0, err
	}
	return mappers.FareValue(payload)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: model request: %v", derr.ErrSourceTemporary, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: model status: %s", derr.ErrSourceTemporary, resp.Status)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("model status: %s%s", resp.Status, errorDetail(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}

	return nil
}

func errorDetail(body io.Reader) string {
	var payload dto.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil || payload.Detail == "" {
		return ""
	}
	return ": " + payload.Detail
}
