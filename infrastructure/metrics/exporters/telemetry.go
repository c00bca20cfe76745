package exporters

import (
	"context"
	"runtime"
	"time"

	"github.com/catspotter/cat-tracker/infrastructure/config"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultAppName = "cat-tracker-api"
	tracerName     = "cat-tracker-telemetry"
)

var tracer trace.Tracer

// InitJaegerExporter wires the tracer provider when a collector endpoint
// is configured; without one it returns nil and tracing stays off, so an
// unconfigured deployment never batches spans at a dead endpoint.
func InitJaegerExporter(config *config.Config) (*sdktrace.TracerProvider, error) {
	if config.Jaeger.Endpoint == "" {
		return nil, nil
	}
	if config.Jaeger.ServiceName == "" {
		config.Jaeger.ServiceName = defaultAppName
	}
	if config.Jaeger.ServiceVersion == "" {
		config.Jaeger.ServiceVersion = "unknown"
	}

	exp, err := jaeger.New(
		jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(config.Jaeger.Endpoint)),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.Jaeger.ServiceName),
			semconv.ServiceVersion(config.Jaeger.ServiceVersion),
			attribute.String("go.version", runtime.Version()),
			attribute.String("os", runtime.GOOS),
			attribute.String("arch", runtime.GOARCH),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(tracerName)

	return tp, nil
}

func SendTelemetryTrace(config *config.Config) {
	tp, err := InitJaegerExporter(config)
	if err != nil || tp == nil {
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	ctx := context.Background()
	now := time.Now().UTC()

	ctx, span := tracer.Start(ctx, "cat-tracker.startup",
		trace.WithTimestamp(now),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	span.SetAttributes(
		attribute.String("event.id", uuid.NewString()),
		attribute.String("service.name", config.Jaeger.ServiceName),
		attribute.String("service.version", config.Jaeger.ServiceVersion),
		attribute.String("go.version", runtime.Version()),
		attribute.String("os", runtime.GOOS),
		attribute.String("architecture", runtime.GOARCH),
		attribute.String("startup.time", now.Format(time.RFC3339)),
	)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_ = tp.ForceFlush(ctx)
}
