package grpcapp

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/flightforesight/flightforesight/internal/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type GrpcApp struct {
	log        *zap.Logger
	gRPCServer *grpc.Server
	health     *health.Server
	addr       string
}

// New builds a server listening on host:port. A positive timeout bounds
// every unary call.
func New(log *zap.Logger, host string, port int, timeout time.Duration, register func(*grpc.Server)) *GrpcApp {
	addr := fmt.Sprintf("%s:%d", host, port)

	gRPCServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			tracingInterceptor(),
			recoveryInterceptor(log),
			loggingInterceptor(log),
			timeoutInterceptor(timeout),
		),
	)

	register(gRPCServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gRPCServer, healthServer)

	return &GrpcApp{
		log:        log,
		gRPCServer: gRPCServer,
		health:     healthServer,
		addr:       addr,
	}
}

func (a *GrpcApp) Run() error {
	const op = "grpcapp.Run"

	l, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return a.Serve(l)
}

func (a *GrpcApp) Serve(l net.Listener) error {
	const op = "grpcapp.Serve"

	a.log.Info("gRPC server started", zap.String("addr", l.Addr().String()))

	if err := a.gRPCServer.Serve(l); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *GrpcApp) Stop() {
	a.log.Info("stopping gRPC server", zap.String("addr", a.addr))
	a.health.Shutdown()
	a.gRPCServer.GracefulStop()
}

func tracingInterceptor() grpc.UnaryServerInterceptor {
	tracer := otel.Tracer("flightforesight/grpc")

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx, span := tracer.Start(tracing.Extract(ctx), info.FullMethod, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		return handler(ctx, req)
	}
}

func loggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}

		switch {
		case err == nil:
			log.Info("gRPC request", fields...)
		case code == codes.InvalidArgument || code == codes.NotFound:
			log.Warn("gRPC request rejected", append(fields, zap.Error(err))...)
		default:
			log.Error("gRPC request failed", append(fields, zap.Error(err))...)
		}

		return resp, err
	}
}

func recoveryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered", zap.Any("panic", r), zap.String("method", info.FullMethod))
				err = status.Error(codes.Internal, "internal error")
			}
		}()

		return handler(ctx, req)
	}
}

func timeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if timeout <= 0 {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}
