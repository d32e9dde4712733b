package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/api/http/handlers"
	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/api/http/middleware"
	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/api/http/router"
	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/clients/airport"
	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/clients/prediction"
	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/config"
	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	predictionv1 "github.com/flightforesight/flightforesight/contracts/prediction/v1"
	"github.com/flightforesight/flightforesight/internal/logger"
	"github.com/flightforesight/flightforesight/internal/tracing"
	"github.com/joho/godotenv"
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

	shutdownTracer, err := tracing.Init("api-gateway", cfg.Env, cfg.Tracing)
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

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info("api-gateway starting", zap.String("http_addr", addr))

	predictionConn, err := grpc.NewClient(
		cfg.Clients.Prediction.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(tracing.UnaryClientInterceptor()),
	)
	if err != nil {
		log.Fatal("failed to connect prediction-service grpc", zap.Error(err), zap.String("addr", cfg.Clients.Prediction.Address))
	}
	defer func() {
		if err := predictionConn.Close(); err != nil {
			log.Warn("failed to close prediction-service grpc client", zap.Error(err))
		}
	}()

	airportConn, err := grpc.NewClient(
		cfg.Clients.Airport.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(tracing.UnaryClientInterceptor()),
	)
	if err != nil {
		log.Fatal("failed to connect airport-directory grpc", zap.Error(err), zap.String("addr", cfg.Clients.Airport.Address))
	}
	defer func() {
		if err := airportConn.Close(); err != nil {
			log.Warn("failed to close airport-directory grpc client", zap.Error(err))
		}
	}()

	predictionClient := prediction.NewClient(predictionv1.NewPredictionServiceClient(predictionConn), cfg.Clients.Prediction.Timeout)
	airportClient := airport.NewClient(
		airportv1.NewAirportDirectoryServiceClient(airportConn),
		cfg.Clients.Airport.Timeout,
		cfg.Clients.Airport.SyncTimeout,
	)

	handler := router.New(
		log,
		middleware.NewMetrics(),
		handlers.NewAirportHandler(log, airportClient),
		handlers.NewPredictionHandler(log, predictionClient),
		router.Options{AllowedOrigins: cfg.CORS.AllowedOrigins},
	)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}
