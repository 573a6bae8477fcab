// Package telemetry installs the process-wide OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"errors"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Config struct {
	// OtlpHTTPEndpoint is a full OTLP/HTTP traces URL, e.g. http://localhost:4318/v1/traces.
	OtlpHTTPEndpoint string
	// Stdout pretty-prints finished spans to StdoutWriter.
	Stdout       bool
	StdoutWriter io.Writer
}

type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
}

// Enabled reports whether a provider was installed.
func (t Telemetry) Enabled() bool { return t.TracerProvider != nil }

func (t Telemetry) Shutdown(ctx context.Context) error {
	if t.TracerProvider == nil {
		return nil
	}
	return t.TracerProvider.Shutdown(ctx)
}

// Setup installs a tracer provider for every configured exporter. With no
// exporter configured the global provider is left as the no-op default.
func Setup(ctx context.Context, serviceName string, config Config) (Telemetry, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	exporters, err := newExporters(ctx, config)
	if err != nil {
		return Telemetry{}, err
	}
	if len(exporters) == 0 {
		return Telemetry{}, nil
	}

	r, err := newResource(serviceName)
	if err != nil {
		return Telemetry{}, err
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(r)}
	for _, exp := range exporters {
		opts = append(opts, sdktrace.WithBatcher(exp))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return Telemetry{TracerProvider: tp}, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newExporters(ctx context.Context, c Config) ([]sdktrace.SpanExporter, error) {
	var out []sdktrace.SpanExporter

	if c.OtlpHTTPEndpoint != "" {
		exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(c.OtlpHTTPEndpoint))
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}

	if c.Stdout {
		if c.StdoutWriter == nil {
			return nil, errors.New("telemetry: stdout exporter needs a writer")
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(c.StdoutWriter), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, nil
}
