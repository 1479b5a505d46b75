package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/recipes/match", "200"))

	RecordAPIRequest("POST", "/api/recipes/match", 200, 15*time.Millisecond)
	RecordAPIRequest("POST", "/api/recipes/match", 200, 20*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/recipes/match", "200"))
	if after-before != 2 {
		t.Errorf("expected counter to increase by 2, got %v", after-before)
	}
}

func TestRecordMatch(t *testing.T) {
	okBefore := testutil.ToFloat64(MatchRequestsTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(MatchRequestsTotal.WithLabelValues("error"))

	RecordMatch(time.Millisecond, 3, nil)
	RecordMatch(time.Millisecond, 0, errors.New("database down"))

	if got := testutil.ToFloat64(MatchRequestsTotal.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Errorf("ok outcomes increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(MatchRequestsTotal.WithLabelValues("error")) - errBefore; got != 1 {
		t.Errorf("error outcomes increased by %v, want 1", got)
	}
}

func TestSetSeededRecipes(t *testing.T) {
	SetSeededRecipes(12)
	if got := testutil.ToFloat64(SeededRecipes); got != 12 {
		t.Errorf("SeededRecipes = %v, want 12", got)
	}
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer,
		"recipematch_api_requests_total",
		"recipematch_match_requests_total",
		"recipematch_seeded_recipes",
	)
	if err != nil {
		t.Fatalf("gathering metrics: %v", err)
	}
	for _, p := range problems {
		t.Errorf("metric %s: %s", p.Metric, p.Text)
	}
}
