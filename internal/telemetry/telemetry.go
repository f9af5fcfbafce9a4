// SPDX-License-Identifier: MIT

// Package telemetry wires OpenTelemetry tracing and search metrics for
// bidirbench.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Name is the instrumentation scope of every tracer and meter.
const Name = "github.com/katalvlaran/bidir"

// Settings selects the exporters.
type Settings struct {
	Enabled        bool
	Endpoint       string    // OTLP/HTTP URL; falls back to OTEL_EXPORTER_OTLP_ENDPOINT
	ServiceName    string
	ServiceVersion string
	Writer         io.Writer // stdout exporter sink when no endpoint is set

	// MetricInterval is the export period of the metric reader. Zero keeps
	// the SDK default; pending points are always flushed on shutdown.
	MetricInterval time.Duration
}

func (s Settings) endpoint() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
}

func (s Settings) writer() io.Writer {
	if s.Writer == nil {
		return os.Stderr
	}
	return s.Writer
}

// Init installs global tracer and meter providers and returns a shutdown
// function that flushes both. When s.Enabled is false it installs nothing and
// shutdown is a no-op.
func Init(ctx context.Context, s Settings) (func(context.Context) error, error) {
	if !s.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(s.ServiceName),
			semconv.ServiceVersion(s.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}

	spans, err := spanExporter(ctx, s)
	if err != nil {
		return nil, err
	}
	metrics, err := metricExporter(ctx, s)
	if err != nil {
		return nil, errors.Join(err, spans.Shutdown(ctx))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spans),
		sdktrace.WithResource(res),
	)
	var readerOpts []sdkmetric.PeriodicReaderOption
	if s.MetricInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(s.MetricInterval))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metrics, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// spanExporter ships spans over OTLP/HTTP when an endpoint is known and to
// the writer otherwise.
func spanExporter(ctx context.Context, s Settings) (sdktrace.SpanExporter, error) {
	if ep := s.endpoint(); ep != "" {
		exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(ep))
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp span exporter: %w", err)
		}
		return exp, nil
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(s.writer()))
	if err != nil {
		return nil, fmt.Errorf("telemetry: stdout span exporter: %w", err)
	}

	return exp, nil
}

// metricExporter mirrors spanExporter for the meter provider.
func metricExporter(ctx context.Context, s Settings) (sdkmetric.Exporter, error) {
	if ep := s.endpoint(); ep != "" {
		exp, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(ep))
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp metric exporter: %w", err)
		}
		return exp, nil
	}
	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(s.writer()))
	if err != nil {
		return nil, fmt.Errorf("telemetry: stdout metric exporter: %w", err)
	}

	return exp, nil
}

// Tracer returns the bidirbench tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(Name)
}

// Instruments records per-search metrics.
type Instruments struct {
	duration metric.Float64Histogram
	expanded metric.Int64Counter
	searches metric.Int64Counter
}

// NewInstruments creates the search instruments on mp, or on the global
// meter provider when mp is nil.
func NewInstruments(mp metric.MeterProvider) (*Instruments, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(Name)

	duration, err := meter.Float64Histogram("bidir.search.duration",
		metric.WithDescription("Wall time of one shortest-path search."),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: duration histogram: %w", err)
	}
	expanded, err := meter.Int64Counter("bidir.search.expanded",
		metric.WithDescription("Vertices settled by shortest-path searches."),
		metric.WithUnit("{vertex}"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: expanded counter: %w", err)
	}
	searches, err := meter.Int64Counter("bidir.search.count",
		metric.WithDescription("Completed shortest-path searches."))
	if err != nil {
		return nil, fmt.Errorf("telemetry: search counter: %w", err)
	}

	return &Instruments{duration: duration, expanded: expanded, searches: searches}, nil
}

// RecordSearch adds one search outcome. A nil receiver records nothing.
func (in *Instruments) RecordSearch(ctx context.Context, algorithm, status string, elapsed time.Duration, expanded int) {
	if in == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("status", status),
	)
	in.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
	in.expanded.Add(ctx, int64(expanded), attrs)
	in.searches.Add(ctx, 1, attrs)
}
