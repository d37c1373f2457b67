// Package metrics exposes Prometheus metrics for RPC traffic and ledger activity.
//
// All methods are safe to call on a nil *Metrics, so components can be built
// without instrumentation in tests.
package metrics

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "qattah"

// Metrics holds the server's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	splitsCreated prometheus.Counter
	splitShares   prometheus.Counter
	splitAmount   prometheus.Counter
	partialSplits prometheus.Counter
	groupsRemoved prometheus.Counter
	sharesSettled prometheus.Counter
	notifications *prometheus.CounterVec
	analysisRuns  prometheus.Counter
}

// New creates the collectors and registers them together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry:    prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		splitsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_created_total",
			Help:      "Split groups written completely.",
		}),
		splitShares: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_shares_total",
			Help:      "Split entries persisted, creator included.",
		}),
		splitAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_amount_total",
			Help:      "Sum of split request amounts.",
		}),
		partialSplits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_partial_total",
			Help:      "Split requests where some entries failed to persist.",
		}),
		groupsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_groups_removed_total",
			Help:      "Split groups deleted by compensation.",
		}),
		sharesSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shares_settled_total",
			Help:      "Successful mark-paid calls.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications by result.",
		}, []string{"result"}),
		analysisRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_runs_total",
			Help:      "Spending summaries computed.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.splitsCreated,
		m.splitShares,
		m.splitAmount,
		m.partialSplits,
		m.groupsRemoved,
		m.sharesSettled,
		m.notifications,
		m.analysisRuns,
	)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Interceptor returns a Connect interceptor counting and timing every RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			if m == nil {
				return resp, err
			}

			procedure := req.Spec().Procedure
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.rpcRequests.WithLabelValues(procedure, code).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// SplitCreated records a split whose entries were all written.
func (m *Metrics) SplitCreated(shares int, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.splitsCreated.Inc()
	m.splitShares.Add(float64(shares))
	m.splitAmount.Add(amount.InexactFloat64())
}

// SplitPartial records a split that left persisted entries behind a failure.
func (m *Metrics) SplitPartial(persisted int) {
	if m == nil {
		return
	}
	m.partialSplits.Inc()
	m.splitShares.Add(float64(persisted))
}

// GroupRemoved records a compensated split group.
func (m *Metrics) GroupRemoved() {
	if m == nil {
		return
	}
	m.groupsRemoved.Inc()
}

// ShareSettled records a successful mark-paid.
func (m *Metrics) ShareSettled() {
	if m == nil {
		return
	}
	m.sharesSettled.Inc()
}

// Notification records a notification attempt.
func (m *Metrics) Notification(err error) {
	if m == nil {
		return
	}
	result := "sent"
	if err != nil {
		result = "failed"
	}
	m.notifications.WithLabelValues(result).Inc()
}

// AnalysisRun records a computed spending summary.
func (m *Metrics) AnalysisRun() {
	if m == nil {
		return
	}
	m.analysisRuns.Inc()
}
