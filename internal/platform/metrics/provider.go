package metrics

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"

	DefaultInterval = time.Minute
)

type Config struct {
	// Exporter: "none" (default) o "stdout".
	Exporter    string
	ServiceName string

	// Interval entre exportaciones periódicas.
	Interval time.Duration

	// Output del exporter stdout; por defecto os.Stdout.
	Output io.Writer
}

// Provider envuelve el MeterProvider del proceso.
// Con exporter "none" los counters son no-op.
type Provider struct {
	sdk *sdkmetric.MeterProvider
	mp  metric.MeterProvider
}

func NewProvider(cfg Config) (*Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Exporter)) {
	case ExporterNone, "":
		return &Provider{mp: noop.NewMeterProvider()}, nil
	case ExporterStdout:
	default:
		return nil, fmt.Errorf("unsupported metrics exporter type: %s", cfg.Exporter)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(out))
	if err != nil {
		return nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "dog-registry"
	}

	sdk := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))),
	)
	return &Provider{sdk: sdk, mp: sdk}, nil
}

func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.mp
}

func (p *Provider) Enabled() bool {
	return p.sdk != nil
}

// Shutdown exporta lo acumulado y cierra el reader.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
