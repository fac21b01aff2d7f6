package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the Prometheus metrics of the service.
// A nil *Collector is valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
	Fetches       *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	CacheLookups  *prometheus.CounterVec
	Resolutions   *prometheus.CounterVec
}

// New registers the metrics against reg, defaulting to the global
// registry when nil.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	var err error
	c := &Collector{gatherer: gatherer}

	if c.HTTPRequests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"})); err != nil {
		return nil, err
	}
	if c.HTTPDurations, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route"})); err != nil {
		return nil, err
	}
	if c.Fetches, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vacation_fetches_total",
		Help: "Open-data fetches, labeled by zone and result (ok, timeout, unavailable, bad_status, decode).",
	}, []string{"zone", "result"})); err != nil {
		return nil, err
	}
	if c.FetchDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "vacation_fetch_duration_seconds",
		Help:    "Open-data fetch latency in seconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
	})); err != nil {
		return nil, err
	}
	if c.CacheLookups, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vacation_cache_lookups_total",
		Help: "Vacation cache lookups, labeled by result (hit, miss, expired).",
	}, []string{"result"})); err != nil {
		return nil, err
	}
	if c.Resolutions, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "status_resolutions_total",
		Help: "Status resolutions, labeled by outcome (in_vacation, in_school, no_data, error).",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}

	return c, nil
}

// register registers col, reusing an identical collector already present
func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return col, fmt.Errorf("register metric: %w", err)
	}
	return col, nil
}

// Gatherer returns the gatherer backing the /metrics endpoint
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return prometheus.DefaultGatherer
	}
	return c.gatherer
}

// ObserveFetch records one open-data fetch
func (c *Collector) ObserveFetch(zone, result string, seconds float64) {
	if c == nil {
		return
	}
	c.Fetches.WithLabelValues(zone, result).Inc()
	c.FetchDuration.Observe(seconds)
}

// ObserveCache records one cache lookup
func (c *Collector) ObserveCache(result string) {
	if c == nil {
		return
	}
	c.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveResolution records one status resolution outcome
func (c *Collector) ObserveResolution(outcome string) {
	if c == nil {
		return
	}
	c.Resolutions.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one handled HTTP request
func (c *Collector) ObserveRequest(method, route, code string, seconds float64) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, code).Inc()
	c.HTTPDurations.WithLabelValues(method, route).Observe(seconds)
}
