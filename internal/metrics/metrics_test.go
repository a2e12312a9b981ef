package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveGeneration(OutcomeOK, 10*time.Millisecond, 7)
	m.ObserveGeneration(OutcomeError, time.Millisecond, 0)

	if got := testutil.ToFloat64(m.Generations.WithLabelValues(OutcomeOK)); got != 1 {
		t.Errorf("ok generations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Generations.WithLabelValues(OutcomeError)); got != 1 {
		t.Errorf("error generations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Items); got != 7 {
		t.Errorf("items = %v, want 7 (failed run must not reset it)", got)
	}
	if got := testutil.CollectAndCount(m.GenerationSeconds); got != 1 {
		t.Errorf("histogram series = %d, want 1", got)
	}
}

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OverrideFailure(OpLoad)
	m.OverrideFailure(OpLoad)
	m.OverrideFailure(OpSave)
	m.RPCRequest("/mealplanner.v1.GroceryService/GenerateList", "ok")

	if got := testutil.ToFloat64(m.OverrideFailures.WithLabelValues(OpLoad)); got != 2 {
		t.Errorf("load failures = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.OverrideFailures.WithLabelValues(OpSave)); got != 1 {
		t.Errorf("save failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues("/mealplanner.v1.GroceryService/GenerateList", "ok")); got != 1 {
		t.Errorf("rpc requests = %v, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveGeneration(OutcomeOK, time.Second, 1)
	m.OverrideFailure(OpSave)
	m.RPCRequest("x", "ok")
}
