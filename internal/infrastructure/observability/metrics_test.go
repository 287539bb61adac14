package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsExist(t *testing.T) {
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, Calculations)
	assert.NotNil(t, NegativeTaxableIncome)
	assert.NotNil(t, RegistryRequests)
	assert.NotNil(t, RegistryDuration)
	assert.NotNil(t, CacheHits)
	assert.NotNil(t, DatabaseOperations)
}

func TestCounters(t *testing.T) {
	// no debe entrar en pánico
	Calculations.WithLabelValues("vat").Inc()
	NegativeTaxableIncome.WithLabelValues("income").Inc()
	RegistryRequests.WithLabelValues("status", "success").Inc()
	CacheHits.WithLabelValues("hit").Inc()
	DatabaseOperations.WithLabelValues("upsert_profile", "error").Inc()
}

func TestRequestDuration(t *testing.T) {
	// no debe entrar en pánico
	RequestDuration.WithLabelValues("/api/calc/vat", "POST", "200").Observe(0.01)
	RegistryDuration.WithLabelValues("status").Observe(0.2)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "success", StatusLabel(nil))
	assert.Equal(t, "error", StatusLabel(errors.New("x")))
}
