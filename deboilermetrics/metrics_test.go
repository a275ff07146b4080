package deboilermetrics_test

import (
	"testing"

	"github.com/globality-corp/deboiler/deboilermetrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_AreRegisteredAndCollectible(t *testing.T) {
	t.Parallel()

	deboilermetrics.PairsCompared.Inc()
	deboilermetrics.PairsDiscarded.Inc()
	deboilermetrics.PagesCleaned.Inc()
	deboilermetrics.PageParseFailures.Inc()
	deboilermetrics.BoilerplateSignatures.Set(42)
	deboilermetrics.FitDuration.Observe(0.5)
	deboilermetrics.TransformDuration.Observe(0.1)

	assert.GreaterOrEqual(t, testutil.ToFloat64(deboilermetrics.PairsCompared), float64(1))
	assert.GreaterOrEqual(t, testutil.ToFloat64(deboilermetrics.PairsDiscarded), float64(1))
	assert.GreaterOrEqual(t, testutil.ToFloat64(deboilermetrics.PagesCleaned), float64(1))
	assert.GreaterOrEqual(t, testutil.ToFloat64(deboilermetrics.PageParseFailures), float64(1))
	assert.Equal(t, float64(42), testutil.ToFloat64(deboilermetrics.BoilerplateSignatures))
}
