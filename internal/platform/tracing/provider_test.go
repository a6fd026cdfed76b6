package tracing_test

import (
	"bytes"
	"context"
	"testing"

	"dog-registry/internal/platform/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_NoneIsNoop(t *testing.T) {
	p, err := tracing.NewProvider(tracing.Config{Exporter: "none"})
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	_, span := p.TracerProvider().Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_StdoutExportsOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	p, err := tracing.NewProvider(tracing.Config{Exporter: "stdout", ServiceName: "dogs-test", Output: &buf})
	require.NoError(t, err)
	assert.True(t, p.Enabled())

	_, span := p.TracerProvider().Tracer("test").Start(context.Background(), "dogs.add")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "dogs.add")
	assert.Contains(t, buf.String(), "dogs-test")
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := tracing.NewProvider(tracing.Config{Exporter: "zipkin"})
	assert.Error(t, err)
}
