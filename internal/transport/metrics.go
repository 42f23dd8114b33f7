// Package transport provides linkedin.Transport decorators: Prometheus
// instrumentation and client-side request pacing.
package transport

import (
	"context"
	"strconv"
	"time"

	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors recorded by Instrument.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the client collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "linkedin_client_requests_total",
			Help: "Total LinkedIn API requests by method, endpoint, and response status.",
		}, []string{"method", "endpoint", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linkedin_client_request_duration_seconds",
			Help:    "LinkedIn API request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "linkedin_client_transport_failures_total",
			Help: "Total LinkedIn API requests that failed before a response arrived.",
		}, []string{"method", "endpoint"}),
	}
}

// Instrument wraps next and records one observation per exchange.
func Instrument(next linkedin.Transport, m *Metrics) linkedin.Transport {
	return linkedin.TransportFunc(func(ctx context.Context, opts *linkedin.RequestOptions) (*linkedin.Response, error) {
		start := time.Now()
		resp, err := next.Send(ctx, opts)

		ep := Endpoint(opts.URL)
		m.duration.WithLabelValues(opts.Method, ep).Observe(time.Since(start).Seconds())
		if err != nil {
			m.failures.WithLabelValues(opts.Method, ep).Inc()
			return nil, err
		}
		m.requests.WithLabelValues(opts.Method, ep, strconv.Itoa(resp.StatusCode)).Inc()
		return resp, nil
	})
}
