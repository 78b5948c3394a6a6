// Package telemetry owns the process-wide Prometheus collectors and the
// OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ServiceName labels spans and the otelhttp middleware.
const ServiceName = "client-desk"

// Exporter names accepted by SetupTracing.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// SetupTracing installs a global tracer provider for the chosen exporter.
// With ExporterNone (or an empty name) the otel no-op provider stays in place.
// The OTLP exporter reads its endpoint from the standard OTEL_EXPORTER_OTLP_*
// variables.
func SetupTracing(ctx context.Context, exporter, env string) (ShutdownFunc, error) {
	var (
		spanExporter sdktrace.SpanExporter
		err          error
	)

	switch exporter {
	case "", ExporterNone:
		return noopShutdown, nil
	case ExporterStdout:
		spanExporter, err = stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
	case ExporterOTLP:
		spanExporter, err = otlptracehttp.New(ctx)
	default:
		return noopShutdown, fmt.Errorf("unknown trace exporter %q", exporter)
	}
	if err != nil {
		return noopShutdown, fmt.Errorf("create %s exporter: %w", exporter, err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("deployment.environment", env),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
