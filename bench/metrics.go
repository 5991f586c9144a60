package bench

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	// count drawn values and finished batches per worker
	Draws   prometheus.CounterVec
	Batches prometheus.CounterVec

	// track running workers and the wait for a semaphore slot
	RunningWorkers prometheus.Gauge
	WorkerWait     prometheus.Histogram
}

// list of useful histogram buckets
var histogramBuckets = []float64{0.001, 0.010, 0.100, 0.250, 1, 5, 10}

// NewMetrics creates and registers all the collectors on a fresh registry,
// so repeated runs in one process never collide.
func NewMetrics(algorithm string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	factory := promauto.With(m.registry)
	labels := prometheus.Labels{"algorithm": algorithm}

	// -- counters

	m.Draws = *factory.NewCounterVec(prometheus.CounterOpts{
		Name:        "prng_bench_draws_total",
		Help:        "64-bit values drawn; partitioned by worker",
		ConstLabels: labels,
	}, []string{"worker"})

	m.Batches = *factory.NewCounterVec(prometheus.CounterOpts{
		Name:        "prng_bench_batches_total",
		Help:        "finished draw batches; partitioned by worker",
		ConstLabels: labels,
	}, []string{"worker"})

	// -- workers

	m.RunningWorkers = factory.NewGauge(prometheus.GaugeOpts{
		Name:        "prng_bench_workers_running",
		Help:        "currently drawing workers",
		ConstLabels: labels,
	})

	m.WorkerWait = factory.NewHistogram(prometheus.HistogramOpts{
		Name:        "prng_bench_worker_wait_seconds",
		Help:        "time a worker waited for a semaphore slot",
		ConstLabels: labels,
		Buckets:     histogramBuckets,
	})

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gather exposes the registry for tests and one-shot dumps.
func (m *Metrics) Gather() (int, error) {
	families, err := m.registry.Gather()
	return len(families), err
}

// observe a finished batch of n draws
func (m *Metrics) observe(worker string, n int) {
	m.Draws.WithLabelValues(worker).Add(float64(n))
	m.Batches.WithLabelValues(worker).Inc()
}
