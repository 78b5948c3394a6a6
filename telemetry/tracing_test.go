package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracing(t *testing.T) {
	ctx := context.Background()

	t.Run("none keeps the no-op provider", func(t *testing.T) {
		shutdown, err := SetupTracing(ctx, ExporterNone, "test")
		require.NoError(t, err)
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("stdout", func(t *testing.T) {
		shutdown, err := SetupTracing(ctx, ExporterStdout, "test")
		require.NoError(t, err)
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("unknown exporter", func(t *testing.T) {
		_, err := SetupTracing(ctx, "zipkin", "test")
		assert.ErrorContains(t, err, "zipkin")
	})
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(clientStatusUpdates.WithLabelValues("approved"))
	RecordStatusUpdate("approved")
	assert.Equal(t, before+1, testutil.ToFloat64(clientStatusUpdates.WithLabelValues("approved")))

	before = testutil.ToFloat64(emailsSent.WithLabelValues("failed"))
	RecordEmail("failed")
	assert.Equal(t, before+1, testutil.ToFloat64(emailsSent.WithLabelValues("failed")))

	before = testutil.ToFloat64(clientsSubmitted)
	RecordClientSubmitted()
	assert.Equal(t, before+1, testutil.ToFloat64(clientsSubmitted))
}
