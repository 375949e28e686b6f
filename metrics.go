package jukeaudio

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type operationKey struct{}

// withOperation tags a request context with the API operation name so
// transports can label it without seeing raw ids.
func withOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

func operationFrom(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok && op != "" {
		return op
	}
	return "unknown"
}

// Metrics holds prometheus collectors for device API requests.
// One Metrics value can be shared by any number of clients.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the request collectors and registers them with reg.
// If the collectors are already registered, the existing ones are reused.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jukeaudio_requests_total",
				Help: "Juke Audio API requests by operation, method and status code (code=error on transport failure)",
			},
			[]string{"operation", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jukeaudio_request_duration_seconds",
				Help:    "Juke Audio API request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "method"},
		),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.requests, err = registerOrReuse(reg, m.requests); err != nil {
		return nil, err
	}
	if m.duration, err = registerOrReuse(reg, m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return collector, err
	}
	return collector, nil
}

// Collectors exposes the underlying collectors, e.g. for a custom registry.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.duration}
}

// WithMetrics records every request of the client in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// Wrap returns base instrumented with m. A nil base uses http.DefaultTransport.
func (m *Metrics) Wrap(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &MetricsTransport{Base: base, Metrics: m}
}

// MetricsTransport wraps an http.RoundTripper and records request counts and latency.
type MetricsTransport struct {
	Base    http.RoundTripper
	Metrics *Metrics
}

// RoundTrip implements http.RoundTripper with metrics.
func (t *MetricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	op := operationFrom(req.Context())
	start := time.Now()

	resp, err := t.Base.RoundTrip(req)

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	t.Metrics.requests.WithLabelValues(op, req.Method, code).Inc()
	t.Metrics.duration.WithLabelValues(op, req.Method).Observe(time.Since(start).Seconds())

	return resp, err
}
