package metrics_test

import (
	"bytes"
	"context"
	"testing"

	"dog-registry/internal/adapters/storage/memory"
	"dog-registry/internal/domain/dogs"
	"dog-registry/internal/platform/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_NoneIsNoop(t *testing.T) {
	p, err := metrics.NewProvider(metrics.Config{Exporter: "none"})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.MeterProvider())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_StdoutExportsRegistryCounters(t *testing.T) {
	var buf bytes.Buffer
	p, err := metrics.NewProvider(metrics.Config{Exporter: "stdout", ServiceName: "dogs-test", Output: &buf})
	require.NoError(t, err)
	assert.True(t, p.Enabled())

	reg := dogs.NewRegistry(memory.NewDogRepo(), dogs.WithMeterProvider(p.MeterProvider()))
	ctx := context.Background()
	require.NoError(t, reg.Initialize(ctx))
	d, err := reg.Add(ctx, "Fido", "Beagle")
	require.NoError(t, err)
	require.NoError(t, reg.Delete(ctx, d.ID))

	// Shutdown hace el último collect + export
	require.NoError(t, p.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "dogs.created")
	assert.Contains(t, out, "dogs.deleted")
	assert.Contains(t, out, "dogs-test")
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := metrics.NewProvider(metrics.Config{Exporter: "prometheus"})
	assert.Error(t, err)
}
