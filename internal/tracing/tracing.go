// Package tracing wires the OpenTelemetry SDK to a Jaeger collector for the
// FlightForesight services.
package tracing

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const defaultCollector = "http://localhost:14268/api/traces"

type Config struct {
	Collector   string  `yaml:"collector" env:"JAEGER_COLLECTOR" env-default:"localhost:14268"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO" env-default:"1"`
	Disabled    bool    `yaml:"disabled" env:"TRACING_DISABLED" env-default:"false"`
}

// Init installs a global tracer provider and propagator and returns its
// shutdown function. A disabled config keeps the no-op global provider.
func Init(serviceName, env string, cfg Config) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.Disabled {
		return func(context.Context) error { return nil }, nil
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(normalizeCollector(cfg.Collector)),
	))
	if err != nil {
		return nil, fmt.Errorf("tracing.Init: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(sampleRatio(cfg.SampleRatio)))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironment(env),
		)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func sampleRatio(v float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func normalizeCollector(value string) string {
	endpoint := strings.TrimSpace(value)
	if endpoint == "" {
		return defaultCollector
	}

	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	if strings.HasSuffix(endpoint, "/api/traces") {
		return endpoint
	}

	return strings.TrimSuffix(endpoint, "/") + "/api/traces"
}
