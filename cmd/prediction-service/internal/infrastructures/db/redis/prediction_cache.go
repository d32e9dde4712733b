package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	derr "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/errors"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

type PredictionCacheRepository struct {
	redis *redis.Client
}

func NewPredictionCacheRepository(redisClient *redis.Client) *PredictionCacheRepository {
	return &PredictionCacheRepository{redis: redisClient}
}

func (r *PredictionCacheRepository) Get(ctx context.Context, kind models.Kind, key string) (float64, error) {
	data, err := r.redis.Get(ctx, predictionKey(kind, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, derr.ErrPredictionNotFound
		}
		return 0, fmt.Errorf("redis get prediction: %w", err)
	}

	value, err := strconv.ParseFloat(data, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cached prediction: %w", err)
	}

	return value, nil
}

func (r *PredictionCacheRepository) Set(ctx context.Context, kind models.Kind, key string, value float64, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data := strconv.FormatFloat(value, 'f', -1, 64)
	if err := r.redis.Set(ctx, predictionKey(kind, key), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set prediction: %w", err)
	}

	return nil
}

func predictionKey(kind models.Kind, key string) string {
	return fmt.Sprintf("prediction:%s:%s", kind, key)
}
