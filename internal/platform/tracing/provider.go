package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

type Config struct {
	// Exporter: "none" (default) o "stdout".
	Exporter    string
	ServiceName string

	// Output del exporter stdout; por defecto os.Stdout.
	Output io.Writer
}

// Provider envuelve el TracerProvider del proceso.
// Con exporter "none" es un no-op sin costo.
type Provider struct {
	sdk *sdktrace.TracerProvider
	tp  trace.TracerProvider
}

func NewProvider(cfg Config) (*Provider, error) {
	exporter := strings.ToLower(strings.TrimSpace(cfg.Exporter))

	switch exporter {
	case ExporterNone, "":
		return &Provider{tp: noop.NewTracerProvider()}, nil
	case ExporterStdout:
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "dog-registry"
	}

	// NewSchemaless evita conflictos de schema con resource.Default()
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exp),
	)
	return &Provider{sdk: sdk, tp: sdk}, nil
}

func (p *Provider) TracerProvider() trace.TracerProvider {
	return p.tp
}

func (p *Provider) Enabled() bool {
	return p.sdk != nil
}

// Shutdown hace flush de los spans pendientes.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
