package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/reference/dto"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

// NewClient builds a feed client. maxRetries counts extra attempts made after
// an unavailable response; backoff doubles between them.
func NewClient(baseURL string, httpClient *http.Client, maxRetries int, backoff time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

func (c *Client) GetAirports(ctx context.Context, path string) ([]dto.AirportRecord, error) {
	var records []dto.AirportRecord
	if err := c.getJSON(ctx, path, &records); err != nil {
		return nil, fmt.Errorf("get airports: %w", err)
	}
	return records, nil
}

func (c *Client) GetAirlines(ctx context.Context, path string) ([]dto.AirlineRecord, error) {
	var records []dto.AirlineRecord
	if err := c.getJSON(ctx, path, &records); err != nil {
		return nil, fmt.Errorf("get airlines: %w", err)
	}
	return records, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	wait := c.backoff

	var err error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 && wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			wait *= 2
		}

		err = c.do(ctx, url, out)
		if err == nil || !errors.Is(err, derr.ErrSourceUnavailable) {
			return err
		}
	}

	return err
}

func (c *Client) do(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: do request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%w: unexpected status: %s", derr.ErrSourceUnavailable, resp.Status)
		}
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
