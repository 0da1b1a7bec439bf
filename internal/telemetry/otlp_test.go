package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))

	_, span := p.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid(), "disabled provider yields no-op spans")
	span.End()
}

func TestNewProvider_Enabled(t *testing.T) {
	// The exporter connects lazily, so no collector is needed to construct it.
	p, err := NewProvider(context.Background(), "localhost:4318", "docintake-test")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Enabled())

	_, span := p.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestNewProvider_EndpointURL(t *testing.T) {
	p, err := NewProvider(context.Background(), "http://localhost:4318", "docintake-test")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Enabled())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)

	_, err = NewProvider(context.Background(), "http://[::1", "")
	assert.Error(t, err)
	_, err = NewProvider(context.Background(), "grpc://localhost:4317", "")
	assert.ErrorContains(t, err, "unsupported scheme")
}

func TestEndpointOptions(t *testing.T) {
	opts, err := endpointOptions("localhost:4318")
	require.NoError(t, err)
	assert.Len(t, opts, 2, "host:port gets endpoint plus insecure")

	opts, err = endpointOptions("https://collector.example.com")
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}
