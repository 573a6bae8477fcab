package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupWithoutExporters(t *testing.T) {
	tel, err := Setup(context.Background(), "waitlist-test", Config{})
	require.NoError(t, err)
	require.False(t, tel.Enabled())
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetupStdoutNeedsWriter(t *testing.T) {
	_, err := Setup(context.Background(), "waitlist-test", Config{Stdout: true})
	require.Error(t, err)
}

func TestSetupStdoutExportsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	tel, err := Setup(context.Background(), "waitlist-test", Config{Stdout: true, StdoutWriter: &buf})
	require.NoError(t, err)
	require.True(t, tel.Enabled())

	_, span := otel.Tracer("telemetry-test").Start(context.Background(), "unit-of-work")
	span.End()

	// Shutdown flushes the batcher.
	require.NoError(t, tel.Shutdown(context.Background()))
	require.Contains(t, buf.String(), `"Name": "unit-of-work"`)
	require.Contains(t, buf.String(), "waitlist-test")
}
