package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.SplitCreated(3, decimal.RequireFromString("100.00"))
	m.SplitPartial(2)
	m.ShareSettled()
	m.ShareSettled()
	m.GroupRemoved()
	m.Notification(nil)
	m.Notification(errors.New("broker down"))
	m.AnalysisRun()

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"splits created", testutil.ToFloat64(m.splitsCreated), 1},
		{"split shares", testutil.ToFloat64(m.splitShares), 5},
		{"split amount", testutil.ToFloat64(m.splitAmount), 100},
		{"partial splits", testutil.ToFloat64(m.partialSplits), 1},
		{"shares settled", testutil.ToFloat64(m.sharesSettled), 2},
		{"groups removed", testutil.ToFloat64(m.groupsRemoved), 1},
		{"notifications sent", testutil.ToFloat64(m.notifications.WithLabelValues("sent")), 1},
		{"notifications failed", testutil.ToFloat64(m.notifications.WithLabelValues("failed")), 1},
		{"analysis runs", testutil.ToFloat64(m.analysisRuns), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.SplitCreated(2, decimal.NewFromInt(10))
	m.SplitPartial(1)
	m.ShareSettled()
	m.GroupRemoved()
	m.Notification(nil)
	m.AnalysisRun()
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ShareSettled()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "qattah_shares_settled_total 1") {
		t.Errorf("exposition missing settled counter:\n%s", body)
	}
}
