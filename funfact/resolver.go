package funfact

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Metrics records how fun facts are resolved.
type Metrics struct {
	Fallbacks prometheus.Counter
	Duration  *prometheus.HistogramVec
}

// NewMetrics creates the resolver metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "numberclassifier_fun_fact_fallbacks_total",
			Help: "Total number of fun facts generated locally because the numbers API failed.",
		}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "numberclassifier_fun_fact_duration_seconds",
			Help:    "Time spent calling the numbers API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.Fallbacks, m.Duration)
	return m
}

// Resolver returns a fun fact for a number and never fails: any error from the
// source is logged and replaced by Fallback.
type Resolver struct {
	source  Source
	log     *logrus.Logger
	metrics *Metrics
}

// NewResolver creates a Resolver that asks source first.
func NewResolver(source Source, log *logrus.Logger, metrics *Metrics) *Resolver {
	return &Resolver{source: source, log: log, metrics: metrics}
}

// Resolve returns the source's fact for n, or the local fallback sentence if
// the source returns an error.
func (r *Resolver) Resolve(ctx context.Context, n int64) string {
	start := time.Now()
	fact, err := r.source.Fact(ctx, n)
	if err == nil {
		r.metrics.Duration.WithLabelValues("success").Observe(time.Since(start).Seconds())
		return fact
	}

	r.metrics.Duration.WithLabelValues("failure").Observe(time.Since(start).Seconds())
	r.metrics.Fallbacks.Inc()
	r.log.WithFields(logrus.Fields{
		"operation": "resolving fun fact",
		"number":    n,
	}).Warn("numbers API unavailable, using fallback: " + err.Error())
	return Fallback(n)
}
