package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/application/service"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/config"
	"github.com/flightforesight/flightforesight/cmd/prediction-service/internal/domain/ports"
	airportclient "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/airport"
	historyrepo "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/db/postgres/repo"
	cacheredis "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/db/redis"
	eventskafka "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/events/kafka"
	modelclient "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/infrastructures/model/http/client"
	grpcapi "github.com/flightforesight/flightforesight/cmd/prediction-service/internal/transport/grpc"
	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	"github.com/flightforesight/flightforesight/internal/grpcapp"
	"github.com/flightforesight/flightforesight/internal/logger"
	"github.com/flightforesight/flightforesight/internal/tracing"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := logger.Must(cfg.Env, cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.Init("prediction-service", cfg.Env, cfg.Tracing)
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

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("invalid timezone", zap.Error(err))
	}

	log.Info("prediction-service starting",
		zap.String("grpc_addr", fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)),
		zap.String("timezone", loc.String()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	airportConn, err := grpc.NewClient(
		cfg.AirportDirectory.Address(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(tracing.UnaryClientInterceptor()),
	)
	if err != nil {
		log.Fatal("failed to connect airport-directory grpc", zap.Error(err), zap.String("addr", cfg.AirportDirectory.Address()))
	}
	defer func() {
		if err := airportConn.Close(); err != nil {
			log.Warn("failed to close airport-directory grpc client", zap.Error(err))
		}
	}()
	airports := airportclient.NewClient(airportv1.NewAirportDirectoryServiceClient(airportConn), cfg.AirportDirectory.Timeout)

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
	predictionCache := cacheredis.NewPredictionCacheRepository(redisClient)

	var history ports.PredictionRepository
	if dsn := cfg.DB.DSN(); dsn != "" {
		repo, err := historyrepo.New(ctx, dsn)
		if err != nil {
			log.Fatal("failed to connect postgres", zap.Error(err), zap.String("host", cfg.DB.Host))
		}
		defer repo.Close()
		history = repo
	} else {
		log.Warn("db.name is empty, prediction history disabled")
	}

	var publisher ports.PredictionPublisher
	if cfg.Kafka.Enabled {
		p := eventskafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Timeout)
		defer func() {
			if err := p.Close(); err != nil {
				log.Warn("failed to close kafka publisher", zap.Error(err))
			}
		}()
		publisher = p
	}

	model := modelclient.NewClient(cfg.Model.BaseURL, cfg.Model.Timeout)

	predictionService := service.NewPredictionService(log, airports, model, predictionCache, history, publisher, service.Settings{
		CacheTTL:       cfg.PredictionCacheTTL,
		Location:       loc,
		CruiseSpeedKmh: cfg.CruiseSpeedKmh,
	})

	app := grpcapp.New(log, cfg.GRPC.Host, cfg.GRPC.Port, cfg.GRPC.Timeout, func(s *grpc.Server) {
		grpcapi.Register(s, log, predictionService)
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
