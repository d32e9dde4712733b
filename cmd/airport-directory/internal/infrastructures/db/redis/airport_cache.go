package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

type AirportCache struct {
	redis *redis.Client
}

func NewAirportCache(redis *redis.Client) *AirportCache {
	return &AirportCache{redis: redis}
}

func airportKey(iata string) string {
	return fmt.Sprintf("airport:%s", iata)
}

func (c *AirportCache) GetByIATA(ctx context.Context, iata string) (models.Airport, error) {
	data, err := c.redis.Get(ctx, airportKey(iata)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Airport{}, derr.ErrAirportNotFound
		}
		return models.Airport{}, fmt.Errorf("redis get airport: %w", err)
	}

	var airport models.Airport
	if err := json.Unmarshal([]byte(data), &airport); err != nil {
		return models.Airport{}, fmt.Errorf("unmarshal cached airport: %w", err)
	}

	return airport, nil
}

func (c *AirportCache) Set(ctx context.Context, airport models.Airport, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(airport)
	if err != nil {
		return fmt.Errorf("marshal airport for cache: %w", err)
	}

	if err := c.redis.Set(ctx, airportKey(airport.IATA), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set airport: %w", err)
	}

	return nil
}

func (c *AirportCache) Delete(ctx context.Context, iata string) error {
	if err := c.redis.Del(ctx, airportKey(iata)).Err(); err != nil {
		return fmt.Errorf("redis delete airport: %w", err)
	}
	return nil
}
