// Package metrics registers the Prometheus instruments the validation
// engine's callers use to observe it from the outside; the engine itself
// never imports this package.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/staked-chain/txvalidation/validation"
)

// Metrics holds the instruments observing calls into the validation
// engine: how many transactions of each kind were checked, how each
// verify call's outcome broke down by error code, and how long
// verification took.
type Metrics struct {
	txsVerified    *prometheus.CounterVec
	verifyFailures *prometheus.CounterVec
	verifyDuration *prometheus.HistogramVec
}

// New builds and registers a Metrics under namespace.
func New(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		txsVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_verified_total",
			Help:      "Number of transactions submitted for verification, by kind.",
		}, []string{"kind"}),
		verifyFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_failures_total",
			Help:      "Number of verification failures, by kind and error code.",
		}, []string{"kind", "code"}),
		verifyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "verify_duration_seconds",
			Help:      "Time spent inside a single verify call, by kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{m.txsVerified, m.verifyFailures, m.verifyDuration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveResult records one verify call's outcome and latency against
// kind (e.g. "transfer", "bonded_deposit", "unbonding", "unbonded_withdraw").
func (m *Metrics) ObserveResult(kind string, seconds float64, err error) {
	m.txsVerified.WithLabelValues(kind).Inc()
	m.verifyDuration.WithLabelValues(kind).Observe(seconds)
	if err == nil {
		return
	}
	code := "unknown"
	var verr *validation.Error
	if errors.As(err, &verr) {
		code = verr.Code.String()
	}
	m.verifyFailures.WithLabelValues(kind, code).Inc()
}
