package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/application/service"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/config"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/domain/ports"
	airportrepo "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/db/postgres/repo"
	cacheredis "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/db/redis"
	"github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/reference"
	refclient "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/infrastructures/reference/http/client"
	grpcapi "github.com/flightforesight/flightforesight/cmd/airport-directory/internal/transport/grpc"
	"github.com/flightforesight/flightforesight/internal/grpcapp"
	"github.com/flightforesight/flightforesight/internal/logger"
	"github.com/flightforesight/flightforesight/internal/tracing"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := logger.Must(cfg.Env, cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.Init("airport-directory", cfg.Env, cfg.Tracing)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	log.Info("airport-directory starting", zap.String("grpc_addr", fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := airportrepo.New(ctx, cfg.DB.DatabaseURL())
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err), zap.String("host", cfg.DB.Host))
	}
	defer repo.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}()

	var source ports.ReferenceSource
	if cfg.Reference.Enabled() {
		httpClient := &http.Client{Timeout: cfg.Reference.Timeout}
		client := refclient.NewClient(cfg.Reference.BaseURL, httpClient, cfg.Reference.MaxRetries, cfg.Reference.Backoff)
		source = reference.NewSource(client, cfg.Reference.AirportsPath, cfg.Reference.AirlinesPath)
	} else {
		log.Warn("reference.base_url is empty, reference sync disabled")
	}

	airportService := service.NewAirportService(log, repo, cacheredis.NewAirportCache(redisClient), source, cfg.AirportCacheTTL)

	if cfg.Reference.SyncOnStart && source != nil {
		if _, err := airportService.SyncReferenceData(ctx); err != nil {
			log.Error("initial reference sync failed", zap.Error(err))
		}
	}

	app := grpcapp.New(log, cfg.GRPC.Host, cfg.GRPC.Port, cfg.GRPC.Timeout, func(s *grpc.Server) {
		grpcapi.Register(s, log, airportService)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		app.Stop()
	case err := <-errCh:
		if err != nil {
			log.Error("gRPC server stopped", zap.Error(err))
		}
	}
}
