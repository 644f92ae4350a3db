package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGenerationDefaultsLabels(t *testing.T) {
	before := testutil.ToFloat64(GenerationsTotal.WithLabelValues("validation", "unknown", "unknown"))
	RecordGeneration("validation", "", "")
	after := testutil.ToFloat64(GenerationsTotal.WithLabelValues("validation", "unknown", "unknown"))
	assert.Equal(t, before+1, after)
}

func TestRecordProviderCallCountsFailuresOnly(t *testing.T) {
	before := testutil.ToFloat64(ProviderErrorsTotal.WithLabelValues("openai", "policy"))

	RecordProviderCall("openai", "dall-e-3", "", 1.5)
	assert.Equal(t, before, testutil.ToFloat64(ProviderErrorsTotal.WithLabelValues("openai", "policy")))

	RecordProviderCall("openai", "dall-e-3", "policy", 0.5)
	assert.Equal(t, before+1, testutil.ToFloat64(ProviderErrorsTotal.WithLabelValues("openai", "policy")))
}
