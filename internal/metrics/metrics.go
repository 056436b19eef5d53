package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSaved   = "saved"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var (
	Submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marks", Name: "submissions_total", Help: "Form submissions by outcome",
	}, []string{"outcome"})
	StoreOps = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marks", Name: "store_op_seconds", Help: "Results store latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marks", Name: "rate_limited_total", Help: "Requests rejected by the rate limiter",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marks", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(Submissions, StoreOps, RateLimited, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func CountSubmission(outcome string) { Submissions.WithLabelValues(outcome).Inc() }

// ObserveStoreOp is meant to be deferred with the start time.
func ObserveStoreOp(op string, start time.Time) {
	StoreOps.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
