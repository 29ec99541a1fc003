// Package telemetry traces game startup and player actions.
//
// When enabled, spans are batched to an OTLP/HTTP collector: Honeycomb when an
// API key is given, otherwise whatever the OTEL_EXPORTER_OTLP_* variables name.
// When disabled, a no-op provider is installed and every span is free.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName       = "rpgschool"
	honeycombEndpoint = "api.honeycomb.io"
)

// Options selects where spans go.
type Options struct {
	Enabled bool
	Version string // Reported as service.version

	HoneycombAPIKey  string
	HoneycombDataset string // Defaults to the service name
}

// Setup installs the global tracer provider described by opts.
// The returned function flushes pending spans and must be called on exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.Enabled {
		Disable()
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(opts)...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource(opts.Version)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer for one component, e.g. "game" or "session".
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

// Disable installs a no-op tracer provider.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

// exporterOptions points the exporter at Honeycomb when a key is set.
// An explicit OTEL_EXPORTER_OTLP_ENDPOINT still wins.
func exporterOptions(opts Options) []otlptracehttp.Option {
	if opts.HoneycombAPIKey == "" {
		return nil
	}
	dataset := opts.HoneycombDataset
	if dataset == "" {
		dataset = serviceName
	}

	var out []otlptracehttp.Option
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		out = append(out, otlptracehttp.WithEndpoint(honeycombEndpoint))
	}
	return append(out, otlptracehttp.WithHeaders(map[string]string{
		"x-honeycomb-team":    opts.HoneycombAPIKey,
		"x-honeycomb-dataset": dataset,
	}))
}

// newResource describes this process. Schemaless, so it never clashes with
// the SDK's default schema URL.
func newResource(version string) *resource.Resource {
	if version == "" {
		version = "dev"
	}
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
		attribute.String("host.name", host),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	)
}
