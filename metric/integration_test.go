package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockComponent simulates a component that registers its own metrics
type mockComponent struct {
	name    string
	metrics struct {
		responses *prometheus.CounterVec
		inflight  prometheus.Gauge
	}
}

func newMockComponent(name string) *mockComponent {
	return &mockComponent{name: name}
}

// RegisterMetrics registers component-specific metrics
func (m *mockComponent) RegisterMetrics(registrar MetricsRegistrar) error {
	m.metrics.responses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whisperer",
		Subsystem: "mock",
		Name:      "responses_total",
		Help:      "Responses served by the mock component",
	}, []string{"code"})

	err := registrar.RegisterCounterVec(m.name, "responses_total", m.metrics.responses)
	if err != nil {
		return err
	}

	m.metrics.inflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "whisperer",
		Subsystem: "mock",
		Name:      "inflight_requests",
		Help:      "Requests currently being handled by the mock component",
	})

	return registrar.RegisterGauge(m.name, "inflight_requests", m.metrics.inflight)
}

// Serve simulates request handling and updates metrics
func (m *mockComponent) Serve(code string, inflight int) {
	m.metrics.responses.WithLabelValues(code).Inc()
	m.metrics.inflight.Set(float64(inflight))
}

func TestMetricsIntegration_ComponentRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	mock := newMockComponent("test-gateway")

	err := mock.RegisterMetrics(registry)
	require.NoError(t, err)

	mock.Serve("200", 2)

	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	foundMetrics := make(map[string]bool)
	for _, mf := range metricFamilies {
		foundMetrics[mf.GetName()] = true
	}

	assert.True(t, foundMetrics["whisperer_mock_responses_total"],
		"Custom responses metric should be registered")
	assert.True(t, foundMetrics["whisperer_mock_inflight_requests"],
		"Custom inflight metric should be registered")
}

func TestMetricsIntegration_NoDuplicateRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	// Two components with the same name (this shouldn't happen in real usage)
	comp1 := newMockComponent("duplicate-component")
	comp2 := newMockComponent("duplicate-component")

	err := comp1.RegisterMetrics(registry)
	require.NoError(t, err)

	err = comp2.RegisterMetrics(registry)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestMetricsIntegration_CoreAndComponentMetricsSeparate(t *testing.T) {
	registry := NewMetricsRegistry()
	coreMetrics := registry.CoreMetrics()

	mock := newMockComponent("separation-test")
	err := mock.RegisterMetrics(registry)
	require.NoError(t, err)

	// Use core metrics
	coreMetrics.RecordRequest("POST", "/query")
	coreMetrics.RecordBackendRequest(BackendSuccess)

	// Use component-specific metrics
	mock.Serve("200", 1)

	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	foundMetrics := make(map[string]bool)
	for _, mf := range metricFamilies {
		foundMetrics[mf.GetName()] = true
	}

	assert.True(t, foundMetrics["http_requests_total"],
		"core request counter should be present")
	assert.True(t, foundMetrics["whisperer_backend_requests_total"],
		"core backend counter should be present")
	assert.True(t, foundMetrics["whisperer_mock_responses_total"],
		"component-specific responses metric should be present")
	assert.True(t, foundMetrics["whisperer_mock_inflight_requests"],
		"component-specific inflight metric should be present")
}

func TestMetricsIntegration_MetricsUnregistration(t *testing.T) {
	registry := NewMetricsRegistry()

	mock := newMockComponent("unregister-test")

	err := mock.RegisterMetrics(registry)
	require.NoError(t, err)

	mock.Serve("200", 1)

	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	foundBefore := make(map[string]bool)
	for _, mf := range metricFamilies {
		foundBefore[mf.GetName()] = true
	}

	assert.True(t, foundBefore["whisperer_mock_responses_total"],
		"Metric should be present before unregistration")

	success := registry.Unregister("unregister-test", "responses_total")
	assert.True(t, success, "Unregistration should succeed")

	metricFamilies, err = registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	foundAfter := make(map[string]bool)
	for _, mf := range metricFamilies {
		foundAfter[mf.GetName()] = true
	}

	assert.False(t, foundAfter["whisperer_mock_responses_total"],
		"Metric should be absent after unregistration")
	assert.True(t, foundAfter["whisperer_mock_inflight_requests"],
		"Other component metrics should remain")
}
