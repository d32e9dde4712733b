package grpcapp

import (
	"context"
	"net"
	"testing"
	"time"

	predictionv1 "github.com/flightforesight/flightforesight/contracts/prediction/v1"
	"github.com/flightforesight/flightforesight/internal/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/test.Service/Method"}

func TestRecoveryInterceptor_ConvertsPanic(t *testing.T) {
	interceptor := recoveryInterceptor(zap.NewNop())

	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("unexpected code: got %v want %v", status.Code(err), codes.Internal)
	}
}

func TestTimeoutInterceptor_SetsDeadline(t *testing.T) {
	interceptor := timeoutInterceptor(time.Second)

	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected deadline on context")
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimeoutInterceptor_ZeroKeepsContext(t *testing.T) {
	interceptor := timeoutInterceptor(0)

	_, _ = interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		if _, ok := ctx.Deadline(); ok {
			t.Fatal("unexpected deadline on context")
		}
		return nil, nil
	})
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	interceptor := loggingInterceptor(zap.NewNop())
	want := status.Error(codes.NotFound, "missing")

	resp, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", want
	})
	if resp != "resp" || err != want {
		t.Fatalf("unexpected result: %v %v", resp, err)
	}
}

func useTestTracing(t *testing.T) trace.Tracer {
	t.Helper()

	prevProvider := otel.GetTracerProvider()
	prevPropagator := otel.GetTextMapPropagator()
	tp := tracesdk.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
	})

	return tp.Tracer("grpcapp-test")
}

func TestTracingInterceptor_JoinsIncomingTrace(t *testing.T) {
	useTestTracing(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	md := metadata.Pairs("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	_, err := tracingInterceptor()(ctx, nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		sc := trace.SpanContextFromContext(ctx)
		if got := sc.TraceID().String(); got != traceID {
			t.Fatalf("unexpected trace id: got %s want %s", got, traceID)
		}
		if got := sc.SpanID().String(); got == "00f067aa0ba902b7" {
			t.Fatal("expected a new server span")
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTracingInterceptor_StartsRootWithoutMetadata(t *testing.T) {
	useTestTracing(t)

	_, _ = tracingInterceptor()(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		if !trace.SpanContextFromContext(ctx).IsValid() {
			t.Fatal("expected a valid server span")
		}
		return nil, nil
	})
}

type traceRecordingServer struct {
	predictionv1.UnimplementedPredictionServiceServer
	traceIDs chan trace.TraceID
}

func (s *traceRecordingServer) ListPredictions(ctx context.Context, req *predictionv1.ListPredictionsRequest) (*predictionv1.ListPredictionsResponse, error) {
	s.traceIDs <- trace.SpanContextFromContext(ctx).TraceID()
	return &predictionv1.ListPredictionsResponse{}, nil
}

func TestGrpcApp_PropagatesTraceFromClient(t *testing.T) {
	tracer := useTestTracing(t)

	srv := &traceRecordingServer{traceIDs: make(chan trace.TraceID, 1)}
	app := New(zap.NewNop(), "localhost", 0, time.Second, func(s *grpc.Server) {
		predictionv1.RegisterPredictionServiceServer(s, srv)
	})

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = app.Serve(lis)
	}()
	t.Cleanup(app.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(tracing.UnaryClientInterceptor()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	ctx, span := tracer.Start(context.Background(), "gateway")
	defer span.End()

	if _, err := predictionv1.NewPredictionServiceClient(conn).ListPredictions(ctx, &predictionv1.ListPredictionsRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := span.SpanContext().TraceID()
	select {
	case got := <-srv.traceIDs:
		if got != want {
			t.Fatalf("unexpected trace id: got %s want %s", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestNew_DoesNotRegisterReflection(t *testing.T) {
	app := New(zap.NewNop(), "localhost", 0, 0, func(*grpc.Server) {})

	for name := range app.gRPCServer.GetServiceInfo() {
		if name == "grpc.reflection.v1.ServerReflection" || name == "grpc.reflection.v1alpha.ServerReflection" {
			t.Fatalf("unexpected reflection service %s", name)
		}
	}
	if _, ok := app.gRPCServer.GetServiceInfo()["grpc.health.v1.Health"]; !ok {
		t.Fatal("expected health service")
	}
}
