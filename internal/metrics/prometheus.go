package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/awmpietro/sortlab/internal/sorttrace"
)

// Recorder reports trace and benchmark activity using Prometheus primitives.
// It satisfies sorttrace.Observer.
type Recorder struct {
	traces     *prometheus.CounterVec
	steps      *prometheus.HistogramVec
	durations  *prometheus.HistogramVec
	benchmarks *prometheus.CounterVec
}

func NewRecorder(registry *prometheus.Registry) (*Recorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &Recorder{
		traces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortlab_traces_total",
			Help: "Total number of trace generation requests by algorithm and status",
		}, []string{"algorithm", "status"}),
		steps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortlab_trace_steps",
			Help:    "Number of steps per generated trace",
			Buckets: prometheus.ExponentialBuckets(2, 2, 14),
		}, []string{"algorithm"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortlab_trace_duration_seconds",
			Help:    "Trace generation latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"algorithm"}),
		benchmarks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortlab_benchmarks_total",
			Help: "Total number of benchmark runs by status",
		}, []string{"status"}),
	}

	for _, collector := range []prometheus.Collector{r.traces, r.steps, r.durations, r.benchmarks} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *Recorder) ObserveTrace(alg sorttrace.Algorithm, size, steps int, duration time.Duration) {
	r.traces.WithLabelValues(string(alg), "ok").Inc()
	r.steps.WithLabelValues(string(alg)).Observe(float64(steps))
	r.durations.WithLabelValues(string(alg)).Observe(duration.Seconds())
}

func (r *Recorder) ObserveTraceError(alg string) {
	r.traces.WithLabelValues(alg, "error").Inc()
}

func (r *Recorder) ObserveBenchmark(status string) {
	r.benchmarks.WithLabelValues(status).Inc()
}

func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
